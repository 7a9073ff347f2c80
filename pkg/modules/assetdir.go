package modules

import (
	"path/filepath"

	"github.com/yawik/modsync/pkg/filesystem"
	"github.com/yawik/modsync/pkg/logging"
	"github.com/yawik/modsync/pkg/types"
)

// ConventionalPublicDir is published when a module declares no asset directory
const ConventionalPublicDir = "public"

// AssetDir returns the symlink-free directory holding m's public assets.
// A declared directory wins over the conventional public/ one. The second
// result is false when the module has no assets.
func AssetDir(fs types.FS, m *Module) (string, bool) {
	var dir string
	if declared := m.PublicDir(); declared != "" {
		dir = declared
	} else {
		dir = filepath.Join(m.Path, ConventionalPublicDir)
	}

	if !filesystem.IsDir(fs, dir) {
		return "", false
	}
	if resolved, err := fs.Realpath(dir); err == nil {
		dir = resolved
	}
	return dir, true
}

// AssetMap maps each module with assets to its asset directory, in module
// order. A module that declares a directory which does not exist is
// reported as a warning and left out.
func AssetMap(fs types.FS, mods []*Module, console *logging.Console) *types.ModuleAssetMap {
	assets := types.NewModuleAssetMap()
	for _, m := range mods {
		dir, ok := AssetDir(fs, m)
		if !ok {
			if declared := m.PublicDir(); declared != "" {
				console.Warn("modules", m.Name+": declared public directory "+declared+" does not exist")
			}
			continue
		}
		assets.Set(m.Name, dir)
	}
	return assets
}
