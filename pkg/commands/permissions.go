package commands

import (
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/logging"
	"github.com/yawik/modsync/pkg/permissions"
)

// FixPermissionsOptions defines the options for the FixPermissions command.
type FixPermissionsOptions struct {
	Env *Environment
}

// FixPermissions repairs the core writable paths and every path the
// discovered modules declare
func FixPermissions(opts FixPermissionsOptions) (*permissions.Result, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "FixPermissions").Msg("Executing command")

	if opts.Env == nil {
		return nil, errors.New(errors.ErrInvalidInput, "environment is required")
	}

	mods, err := opts.Env.Modules()
	if err != nil {
		return nil, err
	}

	files, dirs := permissions.Collect(opts.Env.contributors(mods), opts.Env.PermissionOptions(), opts.Env.Console)
	return opts.Env.Fixer.Fix(files, dirs), nil
}
