package modules

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yawik/modsync/pkg/composer"
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/filesystem"
	"github.com/yawik/modsync/pkg/logging"
	"github.com/yawik/modsync/pkg/permissions"
	"github.com/yawik/modsync/pkg/testutil"
)

func newLoader(out *bytes.Buffer) *Loader {
	return NewLoader(filesystem.NewOS(), "", "", logging.NewConsole(out, logging.VerbosityNormal))
}

func TestAssetDir(t *testing.T) {
	root := testutil.TempDir(t)
	fs := filesystem.NewOS()

	conventional := testutil.CreateDir(t, root, "conventional")
	testutil.CreateFile(t, conventional, "public/app.css", "")

	declared := testutil.CreateDir(t, root, "declared")
	testutil.CreateFile(t, declared, "modsync.toml", "[assets]\npublic_dir = \"dist/web\"\n")
	testutil.CreateFile(t, declared, "dist/web/app.js", "")
	testutil.CreateFile(t, declared, "public/ignored.css", "")

	bare := testutil.CreateDir(t, root, "bare")

	loader := newLoader(&bytes.Buffer{})

	dir, ok := AssetDir(fs, loader.Load("Conventional", "local/Conventional", LocalVersion, conventional))
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(conventional, "public"), dir)

	dir, ok = AssetDir(fs, loader.Load("Declared", "vendor/declared", "1.0.0", declared))
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(declared, "dist", "web"), dir)

	_, ok = AssetDir(fs, loader.Load("Bare", "vendor/bare", "1.0.0", bare))
	assert.False(t, ok)
}

func TestAssetDir_ResolvesSymlinks(t *testing.T) {
	root := testutil.TempDir(t)
	realDir := testutil.CreateDir(t, root, "real/public")
	module := testutil.CreateDir(t, root, "module")
	testutil.CreateSymlink(t, realDir, filepath.Join(module, "public"))

	m := newLoader(&bytes.Buffer{}).Load("Linked", "local/Linked", LocalVersion, module)
	dir, ok := AssetDir(filesystem.NewOS(), m)
	assert.True(t, ok)
	assert.Equal(t, realDir, dir)
}

func TestAssetMap(t *testing.T) {
	root := testutil.TempDir(t)
	out := &bytes.Buffer{}
	loader := newLoader(out)

	a := testutil.CreateDir(t, root, "a")
	testutil.CreateDir(t, a, "public")
	b := testutil.CreateDir(t, root, "b")
	testutil.CreateFile(t, b, "modsync.toml", "[assets]\npublic_dir = \"missing\"\n")
	c := testutil.CreateDir(t, root, "c")
	testutil.CreateDir(t, c, "public")

	mods := []*Module{
		loader.Load("Zeta", "x/zeta", "1", a),
		loader.Load("Beta", "x/beta", "1", b),
		loader.Load("Alpha", "x/alpha", "1", c),
	}
	m := AssetMap(filesystem.NewOS(), mods, logging.NewConsole(out, logging.VerbosityNormal))

	assert.Equal(t, []string{"Zeta", "Alpha"}, m.Names())
	assert.Contains(t, out.String(), "Beta: declared public directory")
}

func TestFromPackages(t *testing.T) {
	root := testutil.TempDir(t)
	out := &bytes.Buffer{}
	loader := newLoader(out)

	jobs := testutil.CreateDir(t, root, "vendor/yawik/jobs")
	pkgs := []composer.Package{
		{Name: "yawik/jobs", Type: composer.ModuleType, Version: "0.35.1", InstallPath: jobs, Extra: `{"zf":{"module":"Jobs"}}`},
		{Name: "yawik/nameless", Type: composer.ModuleType, Version: "1.0.0", InstallPath: root},
		{Name: "laminas/laminas-mvc", Type: "library", Version: "3.3.0", InstallPath: root},
	}

	mods := loader.FromPackages(pkgs)
	require.Len(t, mods, 1)
	assert.Equal(t, "Jobs", mods[0].Name)
	assert.Equal(t, "yawik/jobs", mods[0].Package)
	assert.Equal(t, "0.35.1", mods[0].Version)
	assert.Equal(t, jobs, mods[0].Path)
	assert.Nil(t, mods[0].Manifest)
	assert.False(t, mods[0].IsLocal())

	assert.Contains(t, out.String(), "No module definition for: yawik/nameless")
	assert.NotContains(t, out.String(), "laminas")
}

func TestDiscoverLocal(t *testing.T) {
	root := testutil.TempDir(t)
	moduleDir := testutil.CreateDir(t, root, "module")
	testutil.CreateDir(t, moduleDir, "Organizations")
	testutil.CreateDir(t, moduleDir, "Applications")
	testutil.CreateDir(t, moduleDir, ".hidden")
	testutil.CreateFile(t, moduleDir, "README.md", "")

	mods, err := newLoader(&bytes.Buffer{}).DiscoverLocal([]string{moduleDir, filepath.Join(root, "absent")})
	require.NoError(t, err)
	require.Len(t, mods, 2)

	assert.Equal(t, "Applications", mods[0].Name)
	assert.Equal(t, "local/Applications", mods[0].Package)
	assert.True(t, mods[0].IsLocal())
	assert.Equal(t, filepath.Join(moduleDir, "Applications"), mods[0].Path)
	assert.Equal(t, "Organizations", mods[1].Name)
}

func TestManifestPermissions(t *testing.T) {
	root := testutil.TempDir(t)
	opts := permissions.Options{
		Root:     root,
		CacheDir: filepath.Join(root, "var", "cache"),
		LogDir:   filepath.Join(root, "var", "log"),
	}

	valid := testutil.CreateDir(t, root, "valid")
	testutil.CreateFile(t, valid, "modsync.toml", `
[permissions]
directories = ["${cache_dir}/Jobs", "data/uploads"]
files = ["${log_dir}/jobs.log"]
`)
	broken := testutil.CreateDir(t, root, "broken")
	testutil.CreateFile(t, broken, "modsync.toml", `
[permissions]
directories = "var/cache/Broken"
files = [1, 2]
`)
	silent := testutil.CreateDir(t, root, "silent")
	testutil.CreateFile(t, silent, "modsync.toml", "[assets]\npublic_dir = \"web\"\n")

	loader := newLoader(&bytes.Buffer{})
	mods := []*Module{
		loader.Load("Jobs", "yawik/jobs", "1", valid),
		loader.Load("Broken", "yawik/broken", "1", broken),
		loader.Load("Silent", "yawik/silent", "1", silent),
	}

	contributors := Contributors(mods)
	require.Len(t, contributors, 2)

	dirs, err := contributors[0].DirectoryPermissions(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "var", "cache", "Jobs"), filepath.Join(root, "data", "uploads")}, dirs)
	files, err := contributors[0].FilePermissions(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "var", "log", "jobs.log")}, files)

	assert.Equal(t, "Broken", contributors[1].Name())
	_, err = contributors[1].DirectoryPermissions(opts)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	_, err = contributors[1].FilePermissions(opts)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))

	// Collect keeps going past the broken module
	out := &bytes.Buffer{}
	gotFiles, gotDirs := permissions.Collect(contributors, opts, logging.NewConsole(out, logging.VerbosityNormal))
	assert.Len(t, gotDirs, 2)
	assert.Len(t, gotFiles, 1)
	assert.Contains(t, out.String(), "Configuration error in Broken")
}

func TestLoadManifest(t *testing.T) {
	root := testutil.TempDir(t)
	fs := filesystem.NewOS()

	m, err := LoadManifest(fs, filepath.Join(root, "modsync.toml"))
	require.NoError(t, err)
	assert.Nil(t, m)

	path := testutil.CreateFile(t, root, "bad.toml", "[assets\n")
	_, err = LoadManifest(fs, path)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))

	// an unparsable manifest leaves the module without one
	out := &bytes.Buffer{}
	mod := NewLoader(fs, "", "bad.toml", logging.NewConsole(out, logging.VerbosityNormal)).Load("Bad", "x/bad", "1", root)
	assert.Nil(t, mod.Manifest)
	assert.Contains(t, out.String(), "MANIFEST_PARSE")
}
