package types

// ModuleAssetMap is an ordered mapping from module name to the absolute
// directory holding that module's public assets. Names are unique; setting
// an existing name replaces its directory but keeps its position.
type ModuleAssetMap struct {
	names []string
	dirs  map[string]string
}

// NewModuleAssetMap creates an empty map
func NewModuleAssetMap() *ModuleAssetMap {
	return &ModuleAssetMap{dirs: make(map[string]string)}
}

// Set adds or replaces the asset directory for name
func (m *ModuleAssetMap) Set(name, dir string) {
	if m.dirs == nil {
		m.dirs = make(map[string]string)
	}
	if _, ok := m.dirs[name]; !ok {
		m.names = append(m.names, name)
	}
	m.dirs[name] = dir
}

// Get returns the asset directory registered for name
func (m *ModuleAssetMap) Get(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	dir, ok := m.dirs[name]
	return dir, ok
}

// Names returns module names in insertion order
func (m *ModuleAssetMap) Names() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Len returns the number of modules in the map
func (m *ModuleAssetMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Each calls fn for every entry in insertion order
func (m *ModuleAssetMap) Each(fn func(name, dir string)) {
	if m == nil {
		return
	}
	for _, name := range m.names {
		fn(name, m.dirs[name])
	}
}
