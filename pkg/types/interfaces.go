package types

import (
	"io"
	"io/fs"
)

// File is the subset of an open file modsync reads from or writes to
type File interface {
	io.Reader
	io.Writer
	io.Closer
}

// FS is the interface for filesystem operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)
	Chmod(name string, mode fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// Lstat does not follow a trailing symlink. Filesystems without
	// symlinks fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)

	// Realpath returns the absolute, symlink-free form of name.
	Realpath(name string) (string, error)
}
