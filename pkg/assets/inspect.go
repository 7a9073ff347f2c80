package assets

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/yawik/modsync/pkg/filesystem"
)

// TargetState describes what is found at a module's publish target
type TargetState string

const (
	StateRelativeLink TargetState = "relative symlink"
	StateAbsoluteLink TargetState = "absolute symlink"
	StateCopy         TargetState = "copy"
	StateDangling     TargetState = "dangling"
	StateMissing      TargetState = "missing"
	// StateFile is a plain file where a directory or link is expected
	StateFile TargetState = "file"
)

// TargetStatus is the inspection result for one module
type TargetStatus struct {
	Name   string      `json:"name"`
	Target string      `json:"target"`
	State  TargetState `json:"state"`
	// LinkDest is the raw link text for symlinked targets
	LinkDest string `json:"link_dest,omitempty"`
	// Origin is the directory the link resolves to
	Origin string `json:"origin,omitempty"`
}

// Healthy reports whether the target serves assets
func (s TargetStatus) Healthy() bool {
	switch s.State {
	case StateRelativeLink, StateAbsoluteLink, StateCopy:
		return true
	}
	return false
}

// Inspect reports the state of each named module's publish target
func (p *Publisher) Inspect(names []string) []TargetStatus {
	out := make([]TargetStatus, 0, len(names))
	for _, name := range names {
		out = append(out, p.inspect(name))
	}
	return out
}

func (p *Publisher) inspect(name string) TargetStatus {
	status := TargetStatus{Name: name, State: StateMissing}
	target, err := p.target(name)
	if err != nil {
		return status
	}
	status.Target = target

	info, err := p.fs.Lstat(target)
	if err != nil {
		return status
	}

	if info.Mode()&fs.ModeSymlink == 0 {
		if info.IsDir() {
			status.State = StateCopy
		} else {
			status.State = StateFile
		}
		return status
	}

	dest, err := p.fs.Readlink(target)
	if err == nil {
		status.LinkDest = dest
	}
	if _, err := p.fs.Stat(target); err != nil {
		status.State = StateDangling
		return status
	}
	if origin, err := p.fs.Realpath(target); err == nil {
		status.Origin = origin
	}

	status.State = StateRelativeLink
	if filepath.IsAbs(dest) {
		status.State = StateAbsoluteLink
	}
	return status
}

// Published lists the module names currently present under the assets root
func (p *Publisher) Published() ([]string, error) {
	if !filesystem.Exists(p.fs, p.assetsRoot) {
		return nil, nil
	}
	entries, err := p.fs.ReadDir(p.assetsRoot)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
