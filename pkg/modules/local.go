package modules

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/filesystem"
)

// DiscoverLocal treats every subdirectory of dirs as one of the
// application's own modules, named after the directory. Missing dirs are
// skipped; hidden entries are ignored. Modules are returned in dirs order,
// sorted by name within each dir.
func (l *Loader) DiscoverLocal(dirs []string) ([]*Module, error) {
	var mods []*Module
	for _, dir := range dirs {
		if !filesystem.IsDir(l.fs, dir) {
			continue
		}

		entries, err := l.fs.ReadDir(dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPathOperation, "cannot read module directory %s", dir).
				WithDetail("path", dir)
		}

		var names []string
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}
			if !filesystem.IsDir(l.fs, filepath.Join(dir, name)) {
				continue
			}
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			mods = append(mods, l.Load(name, LocalPackagePrefix+name, LocalVersion, filepath.Join(dir, name)))
		}
	}
	return mods, nil
}
