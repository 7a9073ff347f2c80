package plugin

import (
	"github.com/yawik/modsync/pkg/composer"
)

// Diff replays the lifecycle between the recorded state and the packages
// installed now. New module packages become installs, packages with a new
// version become updates, and recorded packages that are gone
// become uninstalls, which come last. Packages that did not change yield no
// operation.
func Diff(pkgs []composer.Package, state *State, moduleType string) []composer.Operation {
	if moduleType == "" {
		moduleType = composer.ModuleType
	}

	var ops []composer.Operation
	present := make(map[string]bool)

	for _, pkg := range pkgs {
		if !pkg.IsType(moduleType) {
			continue
		}
		present[pkg.Name] = true

		prev, ok := state.Lookup(pkg.Name)
		switch {
		case !ok:
			ops = append(ops, composer.Operation{Event: composer.EventPostPackageInstall, Package: pkg})
		case prev.Version != pkg.Version:
			initial := recorded(prev, moduleType)
			ops = append(ops, composer.Operation{Event: composer.EventPostPackageUpdate, Package: pkg, Initial: &initial})
		}
	}

	if state != nil {
		for _, prev := range state.Modules {
			if present[prev.Package] {
				continue
			}
			ops = append(ops, composer.Operation{Event: composer.EventPrePackageUninstall, Package: recorded(prev, moduleType)})
		}
	}

	return ops
}

func recorded(m StateModule, moduleType string) composer.Package {
	return composer.ModulePackage(m.Name, m.Package, moduleType, m.Version, m.Path)
}
