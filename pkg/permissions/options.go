package permissions

import (
	"os"
	"path/filepath"
)

// Options is the context handed to contributors. All directories are
// absolute.
type Options struct {
	Root      string
	ConfigDir string
	CacheDir  string
	LogDir    string
	LogFile   string
}

// Expand substitutes ${root}, ${config_dir}, ${cache_dir}, ${log_dir} and
// ${log_file} in s. Other variables come from the environment. A relative
// result is taken against Root.
func (o Options) Expand(s string) string {
	expanded := os.Expand(s, func(name string) string {
		switch name {
		case "root":
			return o.Root
		case "config_dir":
			return o.ConfigDir
		case "cache_dir":
			return o.CacheDir
		case "log_dir":
			return o.LogDir
		case "log_file":
			return o.LogFile
		}
		return os.Getenv(name)
	})
	if expanded == "" {
		return ""
	}
	if filepath.IsAbs(expanded) || o.Root == "" {
		return filepath.Clean(expanded)
	}
	return filepath.Join(o.Root, expanded)
}
