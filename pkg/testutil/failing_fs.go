package testutil

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/yawik/modsync/pkg/types"
)

// Op names a types.FS operation that FailingFS can fail
type Op string

const (
	OpStat      Op = "stat"
	OpLstat     Op = "lstat"
	OpMkdirAll  Op = "mkdirall"
	OpChmod     Op = "chmod"
	OpOpenFile  Op = "openfile"
	OpSymlink   Op = "symlink"
	OpRemoveAll Op = "removeall"
	OpReadDir   Op = "readdir"
	OpRealpath  Op = "realpath"
)

// FailingFS delegates to an inner FS, except for the operations registered
// with Fail. Each registered rule matches a path by suffix, so a rule for
// "modules/Foo" catches the absolute target path too. An empty suffix
// matches every path.
type FailingFS struct {
	types.FS
	rules []failRule
	// Calls counts failed calls per operation
	Calls map[Op]int
}

type failRule struct {
	op     Op
	suffix string
	err    error
}

// NewFailingFS wraps inner
func NewFailingFS(inner types.FS) *FailingFS {
	return &FailingFS{FS: inner, Calls: make(map[Op]int)}
}

// Fail makes op fail with err for every path ending in suffix. A nil err
// becomes a permission error naming the path.
func (f *FailingFS) Fail(op Op, suffix string, err error) *FailingFS {
	f.rules = append(f.rules, failRule{op: op, suffix: suffix, err: err})
	return f
}

func (f *FailingFS) check(op Op, path string) error {
	for _, r := range f.rules {
		if r.op != op || !strings.HasSuffix(path, r.suffix) {
			continue
		}
		f.Calls[op]++
		if r.err != nil {
			return r.err
		}
		return &fs.PathError{Op: string(op), Path: path, Err: fs.ErrPermission}
	}
	return nil
}

func (f *FailingFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check(OpStat, name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FailingFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.check(OpLstat, name); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *FailingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check(OpMkdirAll, path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FailingFS) Chmod(name string, mode fs.FileMode) error {
	if err := f.check(OpChmod, name); err != nil {
		return err
	}
	return f.FS.Chmod(name, mode)
}

func (f *FailingFS) OpenFile(name string, flag int, perm fs.FileMode) (types.File, error) {
	if err := f.check(OpOpenFile, name); err != nil {
		return nil, err
	}
	return f.FS.OpenFile(name, flag, perm)
}

func (f *FailingFS) Symlink(oldname, newname string) error {
	if err := f.check(OpSymlink, newname); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FailingFS) RemoveAll(path string) error {
	if err := f.check(OpRemoveAll, path); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}

func (f *FailingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FailingFS) Realpath(name string) (string, error) {
	if err := f.check(OpRealpath, name); err != nil {
		return "", err
	}
	return f.FS.Realpath(name)
}

// String lists the registered rules, for test failure messages
func (f *FailingFS) String() string {
	parts := make([]string, 0, len(f.rules))
	for _, r := range f.rules {
		parts = append(parts, fmt.Sprintf("%s(*%s)", r.op, r.suffix))
	}
	return "FailingFS[" + strings.Join(parts, ", ") + "]"
}
