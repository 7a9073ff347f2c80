package commands

import (
	"github.com/yawik/modsync/pkg/assets"
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/logging"
)

// StatusOptions defines the options for the Status command.
type StatusOptions struct {
	Env *Environment
	// Names limits the inspection. When empty, every discovered module is
	// inspected, followed by published entries no module accounts for.
	Names []string
}

// Status inspects the published target of each module
func Status(opts StatusOptions) ([]assets.TargetStatus, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Status").Msg("Executing command")

	if opts.Env == nil {
		return nil, errors.New(errors.ErrInvalidInput, "environment is required")
	}

	names := opts.Names
	if len(names) == 0 {
		var err error
		names, err = statusNames(opts.Env)
		if err != nil {
			return nil, err
		}
	}
	return opts.Env.Publisher.Inspect(names), nil
}

func statusNames(env *Environment) ([]string, error) {
	mods, err := env.Modules()
	if err != nil {
		return nil, err
	}
	published, err := env.Publisher.Published()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	for _, m := range mods {
		if !seen[m.Name] {
			seen[m.Name] = true
			names = append(names, m.Name)
		}
	}
	for _, name := range published {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names, nil
}
