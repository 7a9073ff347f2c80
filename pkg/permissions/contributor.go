package permissions

import (
	"path/filepath"

	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/logging"
)

const logContext = "permissions"

// Contributor declares paths that must exist with adjusted permissions.
// An accessor returns an ErrConfigValid error when its declaration is not
// a list; Collect logs it and treats the contribution as empty.
type Contributor interface {
	Name() string
	DirectoryPermissions(opts Options) ([]string, error)
	FilePermissions(opts Options) ([]string, error)
}

// CoreContributor is the application's own list of writable paths
type CoreContributor struct{}

func (CoreContributor) Name() string {
	return "Core"
}

func (CoreContributor) DirectoryPermissions(opts Options) ([]string, error) {
	return []string{
		filepath.Join(opts.ConfigDir, "autoload"),
		opts.CacheDir,
		opts.LogDir,
		filepath.Join(opts.LogDir, "tracy"),
	}, nil
}

func (CoreContributor) FilePermissions(opts Options) ([]string, error) {
	return []string{opts.LogFile}, nil
}

// Collect aggregates the contributions in order, dropping duplicates and
// empty entries. Relative paths are resolved against opts.Root.
func Collect(contributors []Contributor, opts Options, console *logging.Console) (files, dirs []string) {
	seenFiles := map[string]bool{}
	seenDirs := map[string]bool{}

	for _, c := range contributors {
		d, err := c.DirectoryPermissions(opts)
		if err != nil {
			reportContribution(console, c.Name(), "directory", err)
			d = nil
		}
		dirs = appendUnique(dirs, seenDirs, d, opts)

		f, err := c.FilePermissions(opts)
		if err != nil {
			reportContribution(console, c.Name(), "file", err)
			f = nil
		}
		files = appendUnique(files, seenFiles, f, opts)
	}
	return files, dirs
}

func reportContribution(console *logging.Console, name, kind string, err error) {
	if errors.IsErrorCode(err, errors.ErrConfigValid) {
		console.Errorf(logContext, "Configuration error in %s: %s permission list should be a list: %v", name, kind, err)
		return
	}
	console.Errorf(logContext, "%s: could not read %s permission list: %v", name, kind, err)
}

func appendUnique(out []string, seen map[string]bool, paths []string, opts Options) []string {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) && opts.Root != "" {
			p = filepath.Join(opts.Root, p)
		}
		p = filepath.Clean(p)
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
