package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/yawik/modsync/pkg/config"
	"github.com/yawik/modsync/pkg/errors"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// Paths provides the project layout
type Paths interface {
	Root() string
	PublicDir() string
	AssetsRoot() string
	AssetTarget(moduleName string) string
	ConfigDir() string
	CacheDir() string
	LogDir() string
	LogFile() string
	InstalledJSON() string
	VendorDir() string
	StateFile() string
	LocalModuleDirs() []string
	Resolve(path string) string
	Rel(path string) string
}

type paths struct {
	root          string
	publicDir     string
	assetsRoot    string
	configDir     string
	cacheDir      string
	logDir        string
	logFile       string
	installedJSON string
	stateFile     string
	localDirs     []string
}

// New builds the layout described by cfg
func New(cfg *config.Config) (Paths, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrInvalidInput, "configuration is required")
	}

	root := expandHome(cfg.Project.Root)
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPathOperation, "failed to get absolute path for project root")
	}
	// A missing root is allowed; it is created on first publish.
	if resolved, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = resolved
	}

	p := &paths{root: absRoot}
	p.publicDir = p.Resolve(cfg.Project.PublicDir)
	p.assetsRoot = filepath.Join(p.publicDir, cfg.Project.AssetsDir)
	if filepath.IsAbs(cfg.Project.AssetsDir) {
		p.assetsRoot = filepath.Clean(cfg.Project.AssetsDir)
	}
	p.configDir = p.Resolve(cfg.Project.ConfigDir)
	p.cacheDir = p.Resolve(cfg.Project.CacheDir)
	p.logDir = p.Resolve(cfg.Project.LogDir)
	p.logFile = filepath.Join(p.logDir, cfg.Project.LogFile)
	if filepath.IsAbs(cfg.Project.LogFile) {
		p.logFile = filepath.Clean(cfg.Project.LogFile)
	}
	p.installedJSON = p.Resolve(cfg.Modules.InstalledJSON)
	p.stateFile = p.Resolve(cfg.State.File)
	for _, dir := range cfg.Modules.LocalDirs {
		if dir == "" {
			continue
		}
		p.localDirs = append(p.localDirs, p.Resolve(dir))
	}

	return p, nil
}

// expandHome expands a leading ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	// ~user is left alone
	return path
}

// Root returns the absolute project root
func (p *paths) Root() string {
	return p.root
}

// PublicDir returns the web root
func (p *paths) PublicDir() string {
	return p.publicDir
}

// AssetsRoot returns the directory holding one entry per published module
func (p *paths) AssetsRoot() string {
	return p.assetsRoot
}

// AssetTarget returns where a module's assets are published
func (p *paths) AssetTarget(moduleName string) string {
	return filepath.Join(p.assetsRoot, moduleName)
}

func (p *paths) ConfigDir() string {
	return p.configDir
}

func (p *paths) CacheDir() string {
	return p.cacheDir
}

func (p *paths) LogDir() string {
	return p.logDir
}

func (p *paths) LogFile() string {
	return p.logFile
}

// InstalledJSON returns the package manager's record of installed packages
func (p *paths) InstalledJSON() string {
	return p.installedJSON
}

// VendorDir returns the directory install paths in InstalledJSON are relative to
func (p *paths) VendorDir() string {
	return filepath.Dir(p.installedJSON)
}

// StateFile returns where the last published module set is recorded
func (p *paths) StateFile() string {
	return p.stateFile
}

// LocalModuleDirs returns the directories scanned for the application's own modules
func (p *paths) LocalModuleDirs() []string {
	out := make([]string, len(p.localDirs))
	copy(out, p.localDirs)
	return out
}

// Resolve makes path absolute, taking relative paths against the root
func (p *paths) Resolve(path string) string {
	path = expandHome(path)
	if path == "" {
		return p.root
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.root, path)
}

// Rel returns path relative to the root for display. Paths outside the
// root are returned unchanged.
func (p *paths) Rel(path string) string {
	rel, err := filepath.Rel(p.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
