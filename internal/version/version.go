// Package version holds the build information reported by modsync version.
package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/yawik/modsync/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/yawik/modsync/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/yawik/modsync/internal/version.Date={{.Date}}
)
