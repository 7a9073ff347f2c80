package assets

import (
	"path/filepath"

	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/filesystem"
	"github.com/yawik/modsync/pkg/types"
)

// realize tries method and then every less preferred one. Link failures
// fall through to the next rung; copy is the last rung, so its failure is
// returned.
func (p *Publisher) realize(name, origin, target string, method types.PublishMethod) (types.PublishMethod, error) {
	switch method {
	case types.MethodRelativeSymlink:
		err := p.relativeSymlink(origin, target)
		if err == nil {
			return types.MethodRelativeSymlink, nil
		}
		p.console.Debugf(logContext, "%s: relative symlink failed, trying absolute: %v", name, err)
		fallthrough
	case types.MethodAbsoluteSymlink:
		err := p.absoluteSymlink(origin, target)
		if err == nil {
			return types.MethodAbsoluteSymlink, nil
		}
		p.console.Debugf(logContext, "%s: absolute symlink failed, copying: %v", name, err)
		fallthrough
	default:
		if err := p.hardCopy(origin, target); err != nil {
			return "", err
		}
		return types.MethodCopy, nil
	}
}

func (p *Publisher) relativeSymlink(origin, target string) error {
	parent := filepath.Dir(target)
	if err := p.fs.MkdirAll(parent, 0777); err != nil {
		return errors.Wrapf(err, errors.ErrLinkCreate, "could not create %s", parent)
	}

	// The kernel resolves a relative link from the physical directory it
	// lives in, so both ends are compared in their symlink-free form.
	realParent, err := p.fs.Realpath(parent)
	if err != nil {
		return errors.Wrapf(err, errors.ErrLinkCreate, "could not resolve %s", parent)
	}
	realOrigin := origin
	if resolved, err := p.fs.Realpath(origin); err == nil {
		realOrigin = resolved
	}

	rel, err := filepath.Rel(realParent, realOrigin)
	if err != nil {
		return errors.Wrapf(err, errors.ErrLinkCreate, "no relative path from %s to %s", realParent, realOrigin)
	}

	return p.link(rel, target)
}

func (p *Publisher) absoluteSymlink(origin, target string) error {
	parent := filepath.Dir(target)
	if err := p.fs.MkdirAll(parent, 0777); err != nil {
		return errors.Wrapf(err, errors.ErrLinkCreate, "could not create %s", parent)
	}

	abs, err := filepath.Abs(origin)
	if err != nil {
		return errors.Wrapf(err, errors.ErrLinkCreate, "could not make %s absolute", origin)
	}
	return p.link(abs, target)
}

// link creates target pointing at dest and checks that it resolves. A link
// that was created but does not resolve is removed again.
func (p *Publisher) link(dest, target string) error {
	if err := p.fs.Symlink(dest, target); err != nil {
		p.discard(target)
		return errors.Wrapf(err, errors.ErrLinkCreate, "could not link %s", target)
	}

	if _, err := p.fs.Stat(target); err != nil {
		p.discard(target)
		return errors.Wrapf(err, errors.ErrLinkCreate, "Symbolic link %q was created but appears to be broken", target)
	}
	return nil
}

// discard removes a partial link so the next rung starts from a clean target
func (p *Publisher) discard(target string) {
	if !filesystem.Exists(p.fs, target) {
		return
	}
	if err := p.fs.Remove(target); err != nil {
		p.logger.Warn().Err(err).Str("target", target).Msg("Could not remove partial link")
	}
}

func (p *Publisher) hardCopy(origin, target string) error {
	if err := p.fs.MkdirAll(target, 0777); err != nil {
		return errors.Wrapf(err, errors.ErrCopy, "could not create %s", target)
	}
	if err := p.mirror(origin, target); err != nil {
		// a partial copy would pass for a healthy one
		if rmErr := p.fs.RemoveAll(target); rmErr != nil {
			p.logger.Warn().Err(rmErr).Str("target", target).Msg("Could not remove partial copy")
		}
		return errors.Wrapf(err, errors.ErrCopy, "could not copy %s to %s", origin, target)
	}
	return nil
}
