package testutil

import (
	"github.com/spf13/afero"
	"github.com/yawik/modsync/pkg/filesystem"
	"github.com/yawik/modsync/pkg/types"
)

// plainFs hides every optional afero interface (Linker, LinkReader,
// Lstater) of the wrapped filesystem.
type plainFs struct {
	afero.Fs
}

// NewMemoryFS creates an in-memory filesystem. afero's MemMapFs supports
// neither symlinks nor Lstat, so links always fail on it.
func NewMemoryFS() types.FS {
	return filesystem.NewAferoFS(plainFs{afero.NewMemMapFs()})
}

// NewNoSymlinkFS wraps the real filesystem but refuses to create symlinks,
// like a mount that does not support them. Reads, copies and removals still
// hit the disk so results can be checked with the fixture helpers.
func NewNoSymlinkFS() types.FS {
	return filesystem.NewAferoFS(plainFs{afero.NewOsFs()})
}
