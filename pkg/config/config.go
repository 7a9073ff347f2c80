package config

import (
	"os"

	"github.com/yawik/modsync/pkg/types"
)

// Config is the fully merged modsync configuration
type Config struct {
	Project     Project     `koanf:"project"`
	Assets      Assets      `koanf:"assets"`
	Permissions Permissions `koanf:"permissions"`
	Modules     Modules     `koanf:"modules"`
	State       State       `koanf:"state"`
	Output      Output      `koanf:"output"`
}

// Project describes the application layout. Every directory except Root is
// relative to Root unless absolute.
type Project struct {
	Root      string `koanf:"root"`
	PublicDir string `koanf:"public_dir"`
	AssetsDir string `koanf:"assets_dir"`
	ConfigDir string `koanf:"config_dir"`
	CacheDir  string `koanf:"cache_dir"`
	LogDir    string `koanf:"log_dir"`
	// LogFile is relative to LogDir
	LogFile string `koanf:"log_file"`
}

// Assets configures publishing
type Assets struct {
	Method  string   `koanf:"method"`
	Exclude []string `koanf:"exclude"`
}

// Permissions configures the permission repairer
type Permissions struct {
	DirMode  os.FileMode `koanf:"dir_mode"`
	FileMode os.FileMode `koanf:"file_mode"`
	// Core contributes the application's own writable directories
	Core bool `koanf:"core"`
}

// Modules configures module discovery
type Modules struct {
	Type          string   `koanf:"type"`
	InstalledJSON string   `koanf:"installed_json"`
	LocalDirs     []string `koanf:"local_dirs"`
	Manifest      string   `koanf:"manifest"`
}

// State configures where the last published module set is recorded
type State struct {
	File string `koanf:"file"`
}

// Output configures report rendering
type Output struct {
	Format string `koanf:"format"`
}

// PublishMethod returns the configured preferred method. Load validates it,
// so the default is only returned for hand-built configs.
func (c *Config) PublishMethod() types.PublishMethod {
	m, err := types.ParsePublishMethod(c.Assets.Method)
	if err != nil {
		return types.MethodRelativeSymlink
	}
	return m
}
