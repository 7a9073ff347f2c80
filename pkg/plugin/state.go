package plugin

import (
	"path/filepath"

	"github.com/yawik/modsync/pkg/assets"
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/filesystem"
	"github.com/yawik/modsync/pkg/modules"
	"github.com/yawik/modsync/pkg/types"
	"gopkg.in/yaml.v3"
)

// StateVersion is the format version written to new state files
const StateVersion = 1

// State records the modules published by the last run
type State struct {
	Version int           `yaml:"version"`
	Modules []StateModule `yaml:"modules"`
}

// StateModule is one published module
type StateModule struct {
	Name    string `yaml:"name"`
	Package string `yaml:"package"`
	Version string `yaml:"version"`
	Path    string `yaml:"path"`
	Method  string `yaml:"method"`
}

// Lookup returns the recorded module for a package name
func (s *State) Lookup(pkg string) (StateModule, bool) {
	if s == nil {
		return StateModule{}, false
	}
	for _, m := range s.Modules {
		if m.Package == pkg {
			return m, true
		}
	}
	return StateModule{}, false
}

// NewState records the modules of a flush that were published without
// error. Failed modules are left out so the next run retries them.
func NewState(mods []*modules.Module, report *assets.Report) *State {
	methods := make(map[string]types.PublishMethod)
	if report != nil {
		for _, r := range report.Results {
			if r.Outcome != types.OutcomeError {
				methods[r.Name] = r.Method
			}
		}
	}

	st := &State{Version: StateVersion}
	for _, m := range mods {
		method, ok := methods[m.Name]
		if !ok {
			continue
		}
		st.Modules = append(st.Modules, StateModule{
			Name:    m.Name,
			Package: m.Package,
			Version: m.Version,
			Path:    m.Path,
			Method:  method.String(),
		})
	}
	return st
}

// LoadState reads the state file. A missing file is an empty state.
func LoadState(fs types.FS, path string) (*State, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		if filesystem.IsNotExist(err) {
			return &State{Version: StateVersion}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrStateRead, "could not read %s", path)
	}

	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStateRead, "could not parse %s", path)
	}
	if st.Version == 0 {
		st.Version = StateVersion
	}
	if st.Version > StateVersion {
		return nil, errors.Newf(errors.ErrStateRead, "%s has unsupported version %d", path, st.Version)
	}
	return &st, nil
}

// Save writes the state file, creating its directory
func (s *State) Save(fs types.FS, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, errors.ErrStateWrite, "could not encode state")
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrStateWrite, "could not create %s", filepath.Dir(path))
	}
	if err := fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrStateWrite, "could not write %s", path)
	}
	return nil
}
