package commands

import (
	"github.com/rs/zerolog"
	"github.com/yawik/modsync/pkg/assets"
	"github.com/yawik/modsync/pkg/composer"
	"github.com/yawik/modsync/pkg/config"
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/filesystem"
	"github.com/yawik/modsync/pkg/logging"
	"github.com/yawik/modsync/pkg/modules"
	"github.com/yawik/modsync/pkg/paths"
	"github.com/yawik/modsync/pkg/permissions"
	"github.com/yawik/modsync/pkg/types"
)

// EnvironmentOptions contains what NewEnvironment needs
type EnvironmentOptions struct {
	Config *config.Config
	// FS defaults to the operating system filesystem
	FS      types.FS
	Console *logging.Console
}

// Environment holds the collaborators every command works with
type Environment struct {
	Config    *config.Config
	Paths     paths.Paths
	FS        types.FS
	Console   *logging.Console
	Publisher *assets.Publisher
	Fixer     *permissions.Fixer
	Loader    *modules.Loader
	logger    zerolog.Logger
}

// NewEnvironment resolves the project layout and builds the publisher,
// the fixer and the module loader
func NewEnvironment(opts EnvironmentOptions) (*Environment, error) {
	if opts.Config == nil {
		return nil, errors.New(errors.ErrInvalidInput, "configuration is required")
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	p, err := paths.New(opts.Config)
	if err != nil {
		return nil, err
	}

	publisher, err := assets.New(assets.Options{
		AssetsRoot: p.AssetsRoot(),
		Exclude:    opts.Config.Assets.Exclude,
		Console:    opts.Console,
		FS:         fs,
	})
	if err != nil {
		return nil, err
	}

	fixer := permissions.NewFixer(permissions.FixerOptions{
		DirMode:  opts.Config.Permissions.DirMode,
		FileMode: opts.Config.Permissions.FileMode,
		Console:  opts.Console,
		FS:       fs,
	})

	return &Environment{
		Config:    opts.Config,
		Paths:     p,
		FS:        fs,
		Console:   opts.Console,
		Publisher: publisher,
		Fixer:     fixer,
		Loader:    modules.NewLoader(fs, opts.Config.Modules.Type, opts.Config.Modules.Manifest, opts.Console),
		logger:    logging.GetLogger("commands"),
	}, nil
}

// PermissionOptions returns the context handed to permission contributors
func (e *Environment) PermissionOptions() permissions.Options {
	return permissions.Options{
		Root:      e.Paths.Root(),
		ConfigDir: e.Paths.ConfigDir(),
		CacheDir:  e.Paths.CacheDir(),
		LogDir:    e.Paths.LogDir(),
		LogFile:   e.Paths.LogFile(),
	}
}

// Packages reads what the package manager installed
func (e *Environment) Packages() ([]composer.Package, error) {
	return composer.ReadInstalled(e.FS, e.Paths.InstalledJSON())
}

// Modules returns the installed module packages followed by the local
// modules. A local module shadows an installed one of the same name.
func (e *Environment) Modules() ([]*modules.Module, error) {
	pkgs, err := e.Packages()
	if err != nil {
		return nil, err
	}
	installed := e.Loader.FromPackages(pkgs)

	local, err := e.Loader.DiscoverLocal(e.Paths.LocalModuleDirs())
	if err != nil {
		return nil, err
	}

	shadowed := make(map[string]bool, len(local))
	for _, m := range local {
		shadowed[m.Name] = true
	}

	var mods []*modules.Module
	for _, m := range installed {
		if shadowed[m.Name] {
			e.logger.Debug().Str("module", m.Name).Msg("Installed module shadowed by local module")
			continue
		}
		mods = append(mods, m)
	}
	return append(mods, local...), nil
}

// contributors returns the core contribution, when enabled, followed by
// those of mods
func (e *Environment) contributors(mods []*modules.Module) []permissions.Contributor {
	var out []permissions.Contributor
	if e.Config.Permissions.Core {
		out = append(out, permissions.CoreContributor{})
	}
	return append(out, modules.Contributors(mods)...)
}
