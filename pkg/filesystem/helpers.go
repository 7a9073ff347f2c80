package filesystem

import (
	"errors"
	"io/fs"

	"github.com/yawik/modsync/pkg/types"
)

// Exists reports whether anything, including a dangling symlink, is at path
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Lstat(path)
	return err == nil
}

// IsDir reports whether path resolves to a directory
func IsDir(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path resolves to a regular file
func IsFile(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsSymlink reports whether path itself is a symlink
func IsSymlink(fsys types.FS, path string) bool {
	info, err := fsys.Lstat(path)
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}

// IsNotExist reports whether err means the path is missing
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
