package plugin

import (
	"github.com/yawik/modsync/pkg/composer"
	"github.com/yawik/modsync/pkg/logging"
)

// Kind tells the accumulator what happened to a package
type Kind int

const (
	KindInstall Kind = iota
	KindUninstall
)

// Accumulator collects module changes between package events and the flush
type Accumulator struct {
	moduleType  string
	console     *logging.Console
	installed   []string
	uninstalled []string
	packages    map[string]composer.Package
}

// NewAccumulator creates an empty accumulator for packages of moduleType
func NewAccumulator(moduleType string, console *logging.Console) *Accumulator {
	if moduleType == "" {
		moduleType = composer.ModuleType
	}
	return &Accumulator{
		moduleType: moduleType,
		console:    console,
		packages:   make(map[string]composer.Package),
	}
}

// Add records pkg and returns the module name it contributes. Packages of
// another type are ignored; module packages without a module definition
// are logged and ignored.
func (a *Accumulator) Add(pkg composer.Package, kind Kind) (string, bool) {
	if !pkg.IsType(a.moduleType) {
		return "", false
	}
	name := pkg.ModuleName()
	if name == "" {
		a.console.Warn("plugin", "No module definition for: "+pkg.Name)
		return "", false
	}

	switch kind {
	case KindUninstall:
		a.installed = remove(a.installed, name)
		a.uninstalled = appendUnique(a.uninstalled, name)
		delete(a.packages, name)
	default:
		a.uninstalled = remove(a.uninstalled, name)
		a.installed = appendUnique(a.installed, name)
		a.packages[name] = pkg
	}
	return name, true
}

// Installed returns the installed or updated module names, in event order
func (a *Accumulator) Installed() []string {
	return append([]string(nil), a.installed...)
}

// Uninstalled returns the uninstalled module names, in event order
func (a *Accumulator) Uninstalled() []string {
	return append([]string(nil), a.uninstalled...)
}

// Paths maps each installed module to its install path
func (a *Accumulator) Paths() map[string]string {
	out := make(map[string]string, len(a.packages))
	for name, pkg := range a.packages {
		out[name] = pkg.InstallPath
	}
	return out
}

// Package returns the package recorded for an installed module
func (a *Accumulator) Package(name string) (composer.Package, bool) {
	pkg, ok := a.packages[name]
	return pkg, ok
}

// Empty reports whether nothing was recorded since the last reset
func (a *Accumulator) Empty() bool {
	return len(a.installed) == 0 && len(a.uninstalled) == 0
}

// Reset forgets everything recorded
func (a *Accumulator) Reset() {
	a.installed = nil
	a.uninstalled = nil
	a.packages = make(map[string]composer.Package)
}

func appendUnique(list []string, name string) []string {
	for _, n := range list {
		if n == name {
			return list
		}
	}
	return append(list, name)
}

func remove(list []string, name string) []string {
	out := list[:0]
	for _, n := range list {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
