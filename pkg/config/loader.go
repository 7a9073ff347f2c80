package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/types"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "MODSYNC_"

// ProjectFileNames are looked up, in order, in the project root
var ProjectFileNames = []string{"modsync.toml", ".modsync.toml"}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// Root is the project root; empty falls back to MODSYNC_PROJECT_ROOT, then "."
	Root string
	// File is an explicit config file, which must exist. When empty the
	// project files are looked up in Root.
	File string
	// Overrides are applied last, keyed by dotted path ("assets.method")
	Overrides map[string]interface{}
}

// Load merges the embedded defaults, the project file, the environment and
// the overrides, in that order.
func Load(opts LoadOptions) (*Config, error) {
	return load(opts, true)
}

// Default returns the embedded defaults rooted at root, ignoring project
// files and the environment.
func Default(root string) *Config {
	cfg, err := load(LoadOptions{Root: root}, false)
	if err != nil {
		panic(err)
	}
	return cfg
}

func load(opts LoadOptions, external bool) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	root := resolveRoot(opts.Root)

	if external {
		// 2. Project file
		path, err := projectFile(root, opts.File)
		if err != nil {
			return nil, err
		}
		if path != "" {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
			}
		}

		// 3. Environment: MODSYNC_ASSETS_METHOD -> assets.method
		err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToFileModeHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// The root is where the project file was looked up, whatever the file says.
	cfg.Project.Root = root

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolveRoot(root string) string {
	if root == "" {
		root = os.Getenv(EnvPrefix + "PROJECT_ROOT")
	}
	if root == "" {
		root = "."
	}
	if abs, err := filepath.Abs(root); err == nil {
		return abs
	}
	return root
}

func projectFile(root, explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", explicit)
		}
		return explicit, nil
	}
	for _, name := range ProjectFileNames {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

var validFormats = map[string]bool{
	"": true, "auto": true, "term": true, "terminal": true, "text": true, "plain": true, "json": true,
}

// Validate rejects values the rest of modsync cannot act on
func Validate(cfg *Config) error {
	if _, err := types.ParsePublishMethod(cfg.Assets.Method); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "assets.method")
	}
	if !validFormats[strings.ToLower(cfg.Output.Format)] {
		return errors.Newf(errors.ErrConfigValid, "output.format: unknown format %q", cfg.Output.Format)
	}
	if cfg.Permissions.DirMode == 0 || cfg.Permissions.FileMode == 0 {
		return errors.New(errors.ErrConfigValid, "permissions: dir_mode and file_mode must be set")
	}
	if cfg.Project.PublicDir == "" || cfg.Project.AssetsDir == "" {
		return errors.New(errors.ErrConfigValid, "project: public_dir and assets_dir must be set")
	}
	return nil
}
