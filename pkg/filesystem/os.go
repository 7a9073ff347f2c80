package filesystem

import (
	"github.com/spf13/afero"
	"github.com/yawik/modsync/pkg/types"
)

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}
