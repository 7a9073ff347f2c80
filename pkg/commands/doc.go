// Package commands provides the command implementations behind the modsync
// CLI.
//
// This package is the orchestration layer between the CLI and the
// publisher, the permission repairer and the plugin coordinator. Each
// command takes an options struct and returns a result the CLI renders:
//   - Install         publish module assets
//   - Uninstall       remove published module assets
//   - FixPermissions  repair the writable paths
//   - Sync            replay package changes recorded since the last run
//   - Status          inspect what is published
//
// All commands share an Environment built from the loaded configuration.
package commands
