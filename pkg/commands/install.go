package commands

import (
	"github.com/yawik/modsync/pkg/assets"
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/logging"
	"github.com/yawik/modsync/pkg/modules"
	"github.com/yawik/modsync/pkg/types"
)

// InstallOptions defines the options for the Install command.
type InstallOptions struct {
	Env *Environment
	// Method overrides the configured preferred method when set
	Method types.PublishMethod
	// Assets is an explicit module name to directory map. When nil the
	// installed and local modules are discovered.
	Assets *types.ModuleAssetMap
}

// Install publishes module assets. The returned report carries exit code 1
// when any module failed; that is not an error of the command itself.
func Install(opts InstallOptions) (*assets.Report, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Install").Msg("Executing command")
	defer logging.LogOperationStart(log, "install")()

	if opts.Env == nil {
		return nil, errors.New(errors.ErrInvalidInput, "environment is required")
	}

	method := opts.Method
	if method == "" {
		method = opts.Env.Config.PublishMethod()
	}

	assetMap := opts.Assets
	if assetMap == nil {
		mods, err := opts.Env.Modules()
		if err != nil {
			return nil, err
		}
		assetMap = modules.AssetMap(opts.Env.FS, mods, opts.Env.Console)
	}

	report := opts.Env.Publisher.Install(assetMap, method)
	log.Info().
		Str("command", "Install").
		Int("modules", len(report.Results)).
		Int("exit_code", report.ExitCode).
		Msg("Command finished")
	return report, nil
}
