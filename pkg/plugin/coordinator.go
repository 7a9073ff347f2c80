package plugin

import (
	"github.com/rs/zerolog"
	"github.com/yawik/modsync/pkg/assets"
	"github.com/yawik/modsync/pkg/composer"
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/filesystem"
	"github.com/yawik/modsync/pkg/logging"
	"github.com/yawik/modsync/pkg/modules"
	"github.com/yawik/modsync/pkg/permissions"
	"github.com/yawik/modsync/pkg/types"
)

// Options contains the collaborators of a Coordinator
type Options struct {
	Publisher *assets.Publisher
	Fixer     *permissions.Fixer
	Loader    *modules.Loader
	FS        types.FS
	// Method is the preferred publish method
	Method types.PublishMethod
	// Permissions is the context handed to permission contributors
	Permissions permissions.Options
	// Core adds the application's own writable paths to every repair
	Core bool
	// Known are the modules already installed before any event arrives;
	// they are republished on every flush
	Known   []*modules.Module
	Console *logging.Console
	Logger  zerolog.Logger
}

// Handler reacts to one lifecycle operation
type Handler func(op composer.Operation)

// FlushResult is what one post-autoload-dump flush did
type FlushResult struct {
	Report      *assets.Report
	Permissions *permissions.Result
	// Uninstalled lists modules whose assets were removed
	Uninstalled  []string
	UninstallErr error
	// Modules are the modules that were published, in publish order
	Modules []*modules.Module
}

// Coordinator turns lifecycle events into publish and repair passes
type Coordinator struct {
	opts   Options
	acc    *Accumulator
	logger zerolog.Logger
	last   *FlushResult
}

// NewCoordinator creates a Coordinator
func NewCoordinator(opts Options) (*Coordinator, error) {
	if opts.Publisher == nil || opts.Fixer == nil || opts.Loader == nil {
		return nil, errors.New(errors.ErrInvalidInput, "publisher, fixer and loader are required")
	}
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("plugin")
	}
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	return &Coordinator{
		opts:   opts,
		acc:    NewAccumulator(opts.Loader.ModuleType(), opts.Console),
		logger: logger,
	}, nil
}

// Accumulator exposes the pending changes
func (c *Coordinator) Accumulator() *Accumulator {
	return c.acc
}

// LastFlush returns the result of the most recent flush, if any
func (c *Coordinator) LastFlush() *FlushResult {
	return c.last
}

// SubscribedEvents maps every event the coordinator handles to its handler
func (c *Coordinator) SubscribedEvents() map[composer.Event]Handler {
	return map[composer.Event]Handler{
		composer.EventPostPackageInstall:  c.OnPostPackageInstall,
		composer.EventPostPackageUpdate:   c.OnPostPackageUpdate,
		composer.EventPrePackageUninstall: c.OnPrePackageUninstall,
		composer.EventPostAutoloadDump: func(composer.Operation) {
			c.OnPostAutoloadDump(c.opts.Known)
		},
	}
}

// Dispatch routes op to its handler
func (c *Coordinator) Dispatch(op composer.Operation) error {
	handler, ok := c.SubscribedEvents()[op.Event]
	if !ok {
		return errors.Newf(errors.ErrInvalidInput, "unsupported event %q", op.Event)
	}
	c.logger.Debug().
		Str("event", string(op.Event)).
		Str("package", op.Package.Name).
		Msg("Dispatching event")
	handler(op)
	return nil
}

// OnPostPackageInstall records an installed package
func (c *Coordinator) OnPostPackageInstall(op composer.Operation) {
	c.acc.Add(op.Package, KindInstall)
}

// OnPostPackageUpdate records the target package of an update
func (c *Coordinator) OnPostPackageUpdate(op composer.Operation) {
	c.acc.Add(op.Package, KindInstall)
}

// OnPrePackageUninstall records a package about to be removed
func (c *Coordinator) OnPrePackageUninstall(op composer.Operation) {
	c.acc.Add(op.Package, KindUninstall)
}

// OnPostAutoloadDump flushes the accumulated changes. known are the modules
// to republish besides the accumulated installs; accumulated uninstalls are
// left out of them.
func (c *Coordinator) OnPostAutoloadDump(known []*modules.Module) *FlushResult {
	result := &FlushResult{}

	if uninstalled := c.acc.Uninstalled(); len(uninstalled) > 0 {
		result.Uninstalled, result.UninstallErr = c.opts.Publisher.Uninstall(uninstalled)
	}

	result.Modules = c.mergeModules(known)

	assetMap := modules.AssetMap(c.opts.FS, result.Modules, c.opts.Console)
	result.Report = c.opts.Publisher.Install(assetMap, c.opts.Method)

	var contributors []permissions.Contributor
	if c.opts.Core {
		contributors = append(contributors, permissions.CoreContributor{})
	}
	contributors = append(contributors, modules.Contributors(result.Modules)...)
	files, dirs := permissions.Collect(contributors, c.opts.Permissions, c.opts.Console)
	result.Permissions = c.opts.Fixer.Fix(files, dirs)

	c.logger.Info().
		Int("installed", len(c.acc.Installed())).
		Int("uninstalled", len(result.Uninstalled)).
		Int("published", len(result.Report.Results)).
		Msg("Flushed module changes")

	c.acc.Reset()
	c.last = result
	return result
}

// mergeModules returns known in order, minus uninstalled modules, with
// accumulated installs replacing or following them
func (c *Coordinator) mergeModules(known []*modules.Module) []*modules.Module {
	gone := make(map[string]bool)
	for _, name := range c.acc.Uninstalled() {
		gone[name] = true
	}

	var out []*modules.Module
	seen := make(map[string]bool)
	for _, m := range known {
		if gone[m.Name] || seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		if pkg, ok := c.acc.Package(m.Name); ok {
			out = append(out, c.opts.Loader.Load(m.Name, pkg.Name, pkg.Version, pkg.InstallPath))
			continue
		}
		out = append(out, m)
	}

	for _, name := range c.acc.Installed() {
		if seen[name] {
			continue
		}
		pkg, _ := c.acc.Package(name)
		out = append(out, c.opts.Loader.Load(name, pkg.Name, pkg.Version, pkg.InstallPath))
	}
	return out
}
