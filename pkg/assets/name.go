package assets

import (
	"path/filepath"
	"strings"

	"github.com/yawik/modsync/pkg/errors"
)

// ValidateName checks that name denotes exactly one entry below an assets
// root. Names come from installed.json and the command line, so anything
// that could resolve to the root itself or outside it is rejected.
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return errors.Newf(errors.ErrInvalidInput, "invalid module name %q", name)
	case strings.ContainsAny(name, `/\`), filepath.Base(name) != name:
		return errors.Newf(errors.ErrInvalidInput, "module name %q must not contain a path separator", name)
	}
	return nil
}

// target resolves name below the assets root, failing for names that would
// leave it.
func (p *Publisher) target(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	target := p.Target(name)
	if filepath.Dir(target) != p.assetsRoot {
		return "", errors.Newf(errors.ErrInvalidInput, "module name %q resolves outside %s", name, p.assetsRoot)
	}
	return target, nil
}
