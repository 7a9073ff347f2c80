package types

import "io/fs"

// PathKind tells the permission repairer what to create when a path is missing
type PathKind string

const (
	PathKindFile      PathKind = "file"
	PathKindDirectory PathKind = "directory"
)

const (
	// DefaultDirMode is applied to required directories
	DefaultDirMode fs.FileMode = 0777
	// DefaultFileMode is applied to required files
	DefaultFileMode fs.FileMode = 0666
)

// PermissionTarget is a required path with the mode it must carry
type PermissionTarget struct {
	Path string
	Kind PathKind
	Mode fs.FileMode
}
