// Package testutil provides fixtures and filesystem doubles for testing
// modsync components.
//
// Key components:
//   - Fixture helpers (CreateFile, CreateDir, CreateSymlink) on the real
//     filesystem under t.TempDir(), which is where symlink behavior is tested
//   - NewNoSymlinkFS: an in-memory filesystem that cannot create links,
//     used to drive the publisher down its fallback chain
//   - FailingFS: wraps any types.FS and fails chosen operations on chosen
//     paths
package testutil
