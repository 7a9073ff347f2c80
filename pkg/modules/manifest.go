package modules

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/filesystem"
	"github.com/yawik/modsync/pkg/permissions"
	"github.com/yawik/modsync/pkg/types"
)

// DefaultManifestName is looked up at each module root
const DefaultManifestName = "modsync.toml"

// Manifest is a module's self-description
type Manifest struct {
	Assets      ManifestAssets      `toml:"assets"`
	Permissions ManifestPermissions `toml:"permissions"`
}

// ManifestAssets declares the module's public asset directory
type ManifestAssets struct {
	// PublicDir is relative to the module root unless absolute
	PublicDir string `toml:"public_dir"`
}

// ManifestPermissions declares writable paths. The lists stay undecoded so
// a wrongly typed value surfaces as a configuration error for this module
// instead of failing the whole manifest.
type ManifestPermissions struct {
	Directories interface{} `toml:"directories"`
	Files       interface{} `toml:"files"`
}

// HasPermissions reports whether the manifest declares any permission list
func (p ManifestPermissions) HasPermissions() bool {
	return p.Directories != nil || p.Files != nil
}

// DirectoryList returns the declared directories, expanded against opts
func (p ManifestPermissions) DirectoryList(opts permissions.Options) ([]string, error) {
	return expandList("directories", p.Directories, opts)
}

// FileList returns the declared files, expanded against opts
func (p ManifestPermissions) FileList(opts permissions.Options) ([]string, error) {
	return expandList("files", p.Files, opts)
}

func expandList(field string, raw interface{}, opts permissions.Options) ([]string, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrConfigValid, "permissions.%s should be a list, got %s", field, describe(raw))
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, errors.Newf(errors.ErrConfigValid, "permissions.%s[%d] should be a string, got %s", field, i, describe(item))
		}
		if expanded := opts.Expand(s); expanded != "" {
			out = append(out, expanded)
		}
	}
	return out, nil
}

func describe(v interface{}) string {
	return fmt.Sprintf("%T (%v)", v, v)
}

// LoadManifest reads the manifest at path. A missing file is not an
// error; it returns nil.
func LoadManifest(fs types.FS, path string) (*Manifest, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		if filesystem.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "could not read %s", path)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "could not parse %s", path)
	}
	return &m, nil
}
