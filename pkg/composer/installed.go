package composer

import (
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/filesystem"
	"github.com/yawik/modsync/pkg/logging"
	"github.com/yawik/modsync/pkg/types"
)

// ModuleType is the package type of application modules
const ModuleType = "yawik-module"

// Package is one entry of installed.json
type Package struct {
	Name    string
	Type    string
	Version string
	// InstallPath is absolute
	InstallPath string
	// Extra is the raw JSON of the package's "extra" section
	Extra string
}

// ModuleName returns the framework module name declared in extra.zf.module
func (p Package) ModuleName() string {
	if p.Extra == "" {
		return ""
	}
	return gjson.Get(p.Extra, "zf.module").String()
}

// IsType reports whether the package has the given type
func (p Package) IsType(t string) bool {
	return p.Type == t
}

// ReadInstalled parses the package manager's installed.json. Both the
// current {"packages": [...]} layout and the older top-level array are
// accepted. Install paths are relative to the file's directory; packages
// without one live in <vendor>/<name>. A missing file yields no packages.
func ReadInstalled(fs types.FS, path string) ([]Package, error) {
	logger := logging.GetLogger("composer")

	data, err := fs.ReadFile(path)
	if err != nil {
		if filesystem.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("No installed.json, assuming no packages")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrInstalledRead, "could not read %s", path)
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.Newf(errors.ErrInstalledRead, "%s is not valid JSON", path)
	}

	root := gjson.ParseBytes(data)
	list := root.Get("packages")
	if !list.Exists() {
		list = root
	}
	if !list.IsArray() {
		return nil, errors.Newf(errors.ErrInstalledRead, "%s does not hold a package list", path)
	}

	base := filepath.Dir(path)
	vendor := filepath.Dir(base)

	var pkgs []Package
	list.ForEach(func(_, item gjson.Result) bool {
		name := item.Get("name").String()
		if name == "" {
			return true
		}

		installPath := item.Get("install-path").String()
		switch {
		case installPath == "":
			installPath = filepath.Join(vendor, filepath.FromSlash(name))
		case !filepath.IsAbs(installPath):
			installPath = filepath.Join(base, filepath.FromSlash(installPath))
		}

		pkgs = append(pkgs, Package{
			Name:        name,
			Type:        item.Get("type").String(),
			Version:     item.Get("version").String(),
			InstallPath: filepath.Clean(installPath),
			Extra:       item.Get("extra").Raw,
		})
		return true
	})

	logger.Debug().Str("path", path).Int("packages", len(pkgs)).Msg("Read installed packages")
	return pkgs, nil
}

// ModulePackage builds a module package that did not come from
// installed.json, such as one of the application's own modules or a module
// remembered from an earlier run.
func ModulePackage(moduleName, name, moduleType, version, installPath string) Package {
	extra, err := sjson.Set("", "zf.module", moduleName)
	if err != nil {
		extra = ""
	}
	return Package{
		Name:        name,
		Type:        moduleType,
		Version:     version,
		InstallPath: installPath,
		Extra:       extra,
	}
}
