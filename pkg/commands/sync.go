package commands

import (
	"github.com/yawik/modsync/pkg/composer"
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/logging"
	"github.com/yawik/modsync/pkg/modules"
	"github.com/yawik/modsync/pkg/plugin"
	"github.com/yawik/modsync/pkg/types"
)

// SyncOptions defines the options for the Sync command.
type SyncOptions struct {
	Env *Environment
	// Method overrides the configured preferred method when set
	Method types.PublishMethod
}

// SyncResult is what one Sync run did
type SyncResult struct {
	// Operations are the lifecycle events replayed before the flush
	Operations []composer.Operation
	Flush      *plugin.FlushResult
	State      *plugin.State
}

// Sync compares the installed modules with the state recorded by the
// previous run, replays the differences as lifecycle events, flushes them
// and records the new state. It is what the package manager's
// post-autoload-dump hook runs.
func Sync(opts SyncOptions) (*SyncResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Sync").Msg("Executing command")
	defer logging.LogOperationStart(log, "sync")()

	if opts.Env == nil {
		return nil, errors.New(errors.ErrInvalidInput, "environment is required")
	}
	env := opts.Env

	mods, err := env.Modules()
	if err != nil {
		return nil, err
	}

	statePath := env.Paths.StateFile()
	previous, err := plugin.LoadState(env.FS, statePath)
	if err != nil {
		return nil, err
	}

	moduleType := env.Loader.ModuleType()
	ops := plugin.Diff(modulePackages(mods, moduleType), previous, moduleType)

	method := opts.Method
	if method == "" {
		method = env.Config.PublishMethod()
	}

	coordinator, err := plugin.NewCoordinator(plugin.Options{
		Publisher:   env.Publisher,
		Fixer:       env.Fixer,
		Loader:      env.Loader,
		FS:          env.FS,
		Method:      method,
		Permissions: env.PermissionOptions(),
		Core:        env.Config.Permissions.Core,
		Known:       mods,
		Console:     env.Console,
	})
	if err != nil {
		return nil, err
	}

	for _, op := range ops {
		if err := coordinator.Dispatch(op); err != nil {
			return nil, err
		}
	}
	if err := coordinator.Dispatch(composer.Operation{Event: composer.EventPostAutoloadDump}); err != nil {
		return nil, err
	}

	flush := coordinator.LastFlush()
	state := plugin.NewState(flush.Modules, flush.Report)
	if err := state.Save(env.FS, statePath); err != nil {
		return nil, err
	}

	log.Info().
		Str("command", "Sync").
		Int("operations", len(ops)).
		Int("modules", len(state.Modules)).
		Msg("Command finished")

	return &SyncResult{Operations: ops, Flush: flush, State: state}, nil
}

// modulePackages describes mods as packages so installed and local modules
// are compared with the state the same way
func modulePackages(mods []*modules.Module, moduleType string) []composer.Package {
	pkgs := make([]composer.Package, 0, len(mods))
	for _, m := range mods {
		pkgs = append(pkgs, composer.ModulePackage(m.Name, m.Package, moduleType, m.Version, m.Path))
	}
	return pkgs
}
