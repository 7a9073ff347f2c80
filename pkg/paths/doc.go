// Package paths resolves the application layout modsync works on.
//
// Every configured directory is relative to the project root unless it is
// absolute. The root itself is made absolute and symlink-resolved once, so
// relative links computed from these paths stay correct when the project is
// reached through a symlinked checkout.
package paths
