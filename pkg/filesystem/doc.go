// Package filesystem provides filesystem implementations for modsync.
//
// This package contains implementations of the types.FS interface on top of
// afero: the real OS filesystem and arbitrary afero filesystems for tests.
package filesystem
