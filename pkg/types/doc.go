// Package types defines the core types and interfaces used throughout modsync.
// This includes the FS abstraction, publish methods and outcomes, the ordered
// module asset map and permission targets.
package types
