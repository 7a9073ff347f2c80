package assets

import (
	stderrors "errors"
	"io/fs"

	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/filesystem"
)

// Uninstall removes the published assets of every named module. A module
// whose target is missing is skipped silently, so calling Uninstall twice
// is harmless. Invalid names and removal failures are logged and returned
// joined; the remaining modules are still processed.
func (p *Publisher) Uninstall(names []string) ([]string, error) {
	var removed []string
	var errs []error

	for _, name := range names {
		target, err := p.target(name)
		if err != nil {
			p.console.Errorf(logContext, "%v", err)
			errs = append(errs, err)
			continue
		}

		info, err := p.fs.Lstat(target)
		if err != nil {
			if filesystem.IsNotExist(err) {
				continue
			}
			errs = append(errs, errors.Wrapf(err, errors.ErrRemoval, "could not inspect %s", target))
			continue
		}
		if !info.IsDir() && info.Mode()&fs.ModeSymlink == 0 {
			p.console.Debugf(logContext, "%s is not a directory or symlink, leaving it", target)
			continue
		}

		if err := p.fs.RemoveAll(target); err != nil {
			wrapped := errors.Wrapf(err, errors.ErrRemoval, "could not remove %s", target).WithDetail("module", name)
			p.console.Errorf(logContext, "%v", wrapped)
			errs = append(errs, wrapped)
			continue
		}

		p.console.Info(logContext, "Removed module assets: "+name)
		removed = append(removed, name)
	}

	return removed, stderrors.Join(errs...)
}
