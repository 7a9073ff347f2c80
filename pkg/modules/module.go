package modules

import (
	"path/filepath"
	"strings"

	"github.com/yawik/modsync/pkg/composer"
	"github.com/yawik/modsync/pkg/logging"
	"github.com/yawik/modsync/pkg/permissions"
	"github.com/yawik/modsync/pkg/types"
)

// LocalPackagePrefix prefixes the package name of the application's own modules
const LocalPackagePrefix = "local/"

// LocalVersion is the version recorded for the application's own modules
const LocalVersion = "local"

// Module is an application module known to modsync
type Module struct {
	// Name is the framework module name, e.g. "Jobs"
	Name string
	// Package is the package name, e.g. "yawik/jobs"
	Package string
	Version string
	// Path is the absolute module root
	Path string
	// Manifest is nil when the module has none
	Manifest *Manifest
}

// AssetProvider is implemented by modules that declare where their public
// assets live
type AssetProvider interface {
	PublicDir() string
}

// PublicDir returns the asset directory declared in the manifest, made
// absolute, or "" when none is declared
func (m *Module) PublicDir() string {
	if m.Manifest == nil || m.Manifest.Assets.PublicDir == "" {
		return ""
	}
	dir := m.Manifest.Assets.PublicDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(m.Path, dir)
	}
	return filepath.Clean(dir)
}

// IsLocal reports whether the module belongs to the application itself
func (m *Module) IsLocal() bool {
	return m.Version == LocalVersion && strings.HasPrefix(m.Package, LocalPackagePrefix)
}

// Contributor returns the module's permission contribution, or nil when its
// manifest declares none
func (m *Module) Contributor() permissions.Contributor {
	if m.Manifest == nil || !m.Manifest.Permissions.HasPermissions() {
		return nil
	}
	return contributor{m}
}

type contributor struct {
	m *Module
}

func (c contributor) Name() string {
	return c.m.Name
}

func (c contributor) DirectoryPermissions(opts permissions.Options) ([]string, error) {
	return c.m.Manifest.Permissions.DirectoryList(opts)
}

func (c contributor) FilePermissions(opts permissions.Options) ([]string, error) {
	return c.m.Manifest.Permissions.FileList(opts)
}

// Loader builds Modules from packages and local directories
type Loader struct {
	fs           types.FS
	manifestName string
	moduleType   string
	console      *logging.Console
}

// NewLoader creates a Loader. Empty names fall back to the defaults.
func NewLoader(fs types.FS, moduleType, manifestName string, console *logging.Console) *Loader {
	if manifestName == "" {
		manifestName = DefaultManifestName
	}
	if moduleType == "" {
		moduleType = composer.ModuleType
	}
	return &Loader{fs: fs, manifestName: manifestName, moduleType: moduleType, console: console}
}

// ModuleType returns the package type treated as a module
func (l *Loader) ModuleType() string {
	return l.moduleType
}

// Load builds a Module rooted at path. An unreadable manifest is logged and
// the module is kept without one.
func (l *Loader) Load(name, pkg, version, path string) *Module {
	m := &Module{Name: name, Package: pkg, Version: version, Path: path}
	if resolved, err := l.fs.Realpath(path); err == nil {
		m.Path = resolved
	}

	manifest, err := LoadManifest(l.fs, filepath.Join(m.Path, l.manifestName))
	if err != nil {
		l.console.Errorf("modules", "%s: %v", name, err)
		return m
	}
	m.Manifest = manifest
	return m
}

// FromPackage builds the Module for an installed package. It returns nil
// for packages of another type; module packages without an extra.zf.module
// definition are logged and skipped.
func (l *Loader) FromPackage(pkg composer.Package) *Module {
	if !pkg.IsType(l.moduleType) {
		return nil
	}
	name := pkg.ModuleName()
	if name == "" {
		l.console.Warn("modules", "No module definition for: "+pkg.Name)
		return nil
	}
	return l.Load(name, pkg.Name, pkg.Version, pkg.InstallPath)
}

// FromPackages builds Modules for every module package, in package order
func (l *Loader) FromPackages(pkgs []composer.Package) []*Module {
	var mods []*Module
	for _, pkg := range pkgs {
		if m := l.FromPackage(pkg); m != nil {
			mods = append(mods, m)
		}
	}
	return mods
}

// Contributors returns the permission contributions of mods, in order
func Contributors(mods []*Module) []permissions.Contributor {
	var out []permissions.Contributor
	for _, m := range mods {
		if c := m.Contributor(); c != nil {
			out = append(out, c)
		}
	}
	return out
}
