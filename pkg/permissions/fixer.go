package permissions

import (
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/filesystem"
	"github.com/yawik/modsync/pkg/logging"
	"github.com/yawik/modsync/pkg/types"
)

// FixerOptions contains configuration for the Fixer
type FixerOptions struct {
	// DirMode and FileMode default to 0777 and 0666
	DirMode  fs.FileMode
	FileMode fs.FileMode
	Console  *logging.Console
	Logger   zerolog.Logger
	// Filesystem operations interface for testing
	FS types.FS
}

// Fixer creates required paths and applies their modes
type Fixer struct {
	fs       types.FS
	dirMode  fs.FileMode
	fileMode fs.FileMode
	console  *logging.Console
	logger   zerolog.Logger
}

// Applied records a target whose mode was set
type Applied struct {
	Target  types.PermissionTarget
	Created bool
}

// Failure records a target that could not be fixed
type Failure struct {
	Target types.PermissionTarget
	// Op is mkdir, touch or chmod
	Op  string
	Err error
}

// Result lists what a Fix pass did. It is informational; a pass never fails
// as a whole.
type Result struct {
	Applied  []Applied
	Failures []Failure
}

// Created counts the targets that did not exist before the pass
func (r *Result) Created() int {
	n := 0
	for _, a := range r.Applied {
		if a.Created {
			n++
		}
	}
	return n
}

// NewFixer creates a Fixer
func NewFixer(opts FixerOptions) *Fixer {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("permissions")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	dirMode, fileMode := opts.DirMode, opts.FileMode
	if dirMode == 0 {
		dirMode = types.DefaultDirMode
	}
	if fileMode == 0 {
		fileMode = types.DefaultFileMode
	}

	return &Fixer{fs: fsys, dirMode: dirMode, fileMode: fileMode, console: opts.Console, logger: logger}
}

// Fix handles the directories first, creating missing ones with their
// parents, then the files, creating missing ones empty. Each path then gets
// its mode. Fix is idempotent.
func (f *Fixer) Fix(files, dirs []string) *Result {
	result := &Result{}

	for _, dir := range dirs {
		f.fixOne(result, types.PermissionTarget{Path: dir, Kind: types.PathKindDirectory, Mode: f.dirMode})
	}
	for _, file := range files {
		f.fixOne(result, types.PermissionTarget{Path: file, Kind: types.PathKindFile, Mode: f.fileMode})
	}

	f.logger.Info().
		Int("applied", len(result.Applied)).
		Int("failures", len(result.Failures)).
		Msg("Permissions fixed")

	return result
}

func (f *Fixer) fixOne(result *Result, target types.PermissionTarget) {
	created := false
	if !filesystem.Exists(f.fs, target.Path) {
		op, err := f.create(target)
		if err != nil {
			f.fail(result, target, op, err)
			return
		}
		f.console.Info(logContext, op+" "+target.Path)
		created = true
	}

	if err := f.fs.Chmod(target.Path, target.Mode); err != nil {
		f.fail(result, target, "chmod", err)
		return
	}
	f.console.Infof(logContext, "chmod %s with %#o", target.Path, target.Mode)
	result.Applied = append(result.Applied, Applied{Target: target, Created: created})
}

func (f *Fixer) create(target types.PermissionTarget) (string, error) {
	if target.Kind == types.PathKindDirectory {
		return "mkdir", f.fs.MkdirAll(target.Path, target.Mode)
	}

	// touch does not create parent directories
	file, err := f.fs.OpenFile(target.Path, os.O_WRONLY|os.O_CREATE, target.Mode)
	if err != nil {
		return "touch", err
	}
	return "touch", file.Close()
}

func (f *Fixer) fail(result *Result, target types.PermissionTarget, op string, err error) {
	wrapped := errors.Wrapf(err, errors.ErrPathOperation, "%s %s failed", op, target.Path).
		WithDetail("path", target.Path).
		WithDetail("op", op)
	f.console.Error(logContext, wrapped.Error())
	result.Failures = append(result.Failures, Failure{Target: target, Op: op, Err: wrapped})
}
