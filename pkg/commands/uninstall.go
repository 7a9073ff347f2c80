package commands

import (
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/logging"
)

// UninstallOptions defines the options for the Uninstall command.
type UninstallOptions struct {
	Env *Environment
	// Names are the modules whose published assets are removed
	Names []string
}

// Uninstall removes published module assets. Modules that were never
// published are skipped silently.
func Uninstall(opts UninstallOptions) ([]string, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Uninstall").Strs("modules", opts.Names).Msg("Executing command")

	if opts.Env == nil {
		return nil, errors.New(errors.ErrInvalidInput, "environment is required")
	}
	if len(opts.Names) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "at least one module name is required")
	}

	return opts.Env.Publisher.Uninstall(opts.Names)
}
