package plugin

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yawik/modsync/pkg/assets"
	"github.com/yawik/modsync/pkg/composer"
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/filesystem"
	"github.com/yawik/modsync/pkg/logging"
	"github.com/yawik/modsync/pkg/modules"
	"github.com/yawik/modsync/pkg/permissions"
	"github.com/yawik/modsync/pkg/testutil"
	"github.com/yawik/modsync/pkg/types"
)

type project struct {
	root       string
	assetsRoot string
	out        *bytes.Buffer
	coord      *Coordinator
	perms      permissions.Options
}

func newProject(t *testing.T, known func(*modules.Loader, string) []*modules.Module) *project {
	t.Helper()
	root := testutil.TempDir(t)
	fs := filesystem.NewOS()
	out := &bytes.Buffer{}
	console := logging.NewConsole(out, logging.VerbosityNormal)

	p := &project{
		root:       root,
		assetsRoot: filepath.Join(root, "public", "modules"),
		out:        out,
		perms: permissions.Options{
			Root:      root,
			ConfigDir: filepath.Join(root, "config"),
			CacheDir:  filepath.Join(root, "var", "cache"),
			LogDir:    filepath.Join(root, "var", "log"),
			LogFile:   filepath.Join(root, "var", "log", "yawik.log"),
		},
	}

	publisher, err := assets.New(assets.Options{AssetsRoot: p.assetsRoot, Console: console, FS: fs})
	require.NoError(t, err)
	loader := modules.NewLoader(fs, "", "", console)

	var knownMods []*modules.Module
	if known != nil {
		knownMods = known(loader, root)
	}

	p.coord, err = NewCoordinator(Options{
		Publisher:   publisher,
		Fixer:       permissions.NewFixer(permissions.FixerOptions{Console: console, FS: fs}),
		Loader:      loader,
		FS:          fs,
		Method:      types.MethodRelativeSymlink,
		Permissions: p.perms,
		Core:        true,
		Known:       knownMods,
		Console:     console,
	})
	require.NoError(t, err)
	return p
}

func (p *project) vendorModule(t *testing.T, name string) string {
	t.Helper()
	dir := testutil.CreateDir(t, p.root, filepath.Join("vendor", "yawik", name))
	testutil.CreateFile(t, dir, "public/"+name+".css", "")
	return dir
}

func TestNewCoordinator_RequiresCollaborators(t *testing.T) {
	_, err := NewCoordinator(Options{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestSubscribedEvents(t *testing.T) {
	p := newProject(t, nil)
	events := p.coord.SubscribedEvents()

	for _, e := range composer.Events {
		assert.Contains(t, events, e)
	}
	err := p.coord.Dispatch(composer.Operation{Event: "pre-install-cmd"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestFlush(t *testing.T) {
	p := newProject(t, func(l *modules.Loader, root string) []*modules.Module {
		app := testutil.CreateDir(t, root, "module/Applications")
		testutil.CreateFile(t, app, "public/app.js", "")
		testutil.CreateFile(t, app, "modsync.toml", `
[permissions]
directories = ["${cache_dir}/Applications"]
files = ["${log_dir}/applications.log"]
`)
		return []*modules.Module{l.Load("Applications", "local/Applications", modules.LocalVersion, app)}
	})

	jobs := p.vendorModule(t, "jobs")
	geo := p.vendorModule(t, "geo")
	testutil.CreateFile(t, p.assetsRoot, "Auth/stale.css", "")

	ops := []composer.Operation{
		{Event: composer.EventPostPackageInstall, Package: modulePkg("Jobs", "yawik/jobs", "1.0.0", jobs)},
		{Event: composer.EventPostPackageUpdate, Package: modulePkg("Geo", "yawik/geo", "2.0.0", geo)},
		{Event: composer.EventPrePackageUninstall, Package: modulePkg("Auth", "yawik/auth", "1.0.0", "/gone")},
		{Event: composer.EventPostAutoloadDump},
	}
	for _, op := range ops {
		require.NoError(t, p.coord.Dispatch(op))
	}

	res := p.coord.LastFlush()
	require.NotNil(t, res)

	assert.Equal(t, []string{"Auth"}, res.Uninstalled)
	assert.NoError(t, res.UninstallErr)
	assert.False(t, testutil.PathExists(t, filepath.Join(p.assetsRoot, "Auth")))
	assert.Contains(t, p.out.String(), "Removed module assets: Auth")

	require.Len(t, res.Report.Results, 3)
	assert.Equal(t, "Applications", res.Report.Results[0].Name)
	assert.Equal(t, "Jobs", res.Report.Results[1].Name)
	assert.Equal(t, "Geo", res.Report.Results[2].Name)
	assert.False(t, res.Report.Failed())
	for _, r := range res.Report.Results {
		assert.True(t, testutil.IsSymlink(t, r.Target), r.Name)
	}
	assert.True(t, testutil.FileExists(t, filepath.Join(p.assetsRoot, "Jobs", "jobs.css")))

	require.Empty(t, res.Permissions.Failures)
	assert.True(t, testutil.DirExists(t, filepath.Join(p.root, "config", "autoload")))
	assert.True(t, testutil.DirExists(t, filepath.Join(p.root, "var", "log", "tracy")))
	assert.True(t, testutil.DirExists(t, filepath.Join(p.root, "var", "cache", "Applications")))
	assert.True(t, testutil.FileExists(t, filepath.Join(p.root, "var", "log", "yawik.log")))
	assert.True(t, testutil.FileExists(t, filepath.Join(p.root, "var", "log", "applications.log")))
	assert.Equal(t, os.FileMode(0777), testutil.Mode(t, filepath.Join(p.root, "var", "cache")))

	assert.True(t, p.coord.Accumulator().Empty())
}

func TestFlush_UninstalledKnownModuleIsNotRepublished(t *testing.T) {
	var jobsDir string
	p := newProject(t, func(l *modules.Loader, root string) []*modules.Module {
		jobsDir = testutil.CreateDir(t, root, "vendor/yawik/jobs")
		testutil.CreateDir(t, jobsDir, "public")
		return []*modules.Module{l.Load("Jobs", "yawik/jobs", "1.0.0", jobsDir)}
	})

	p.coord.OnPrePackageUninstall(composer.Operation{Package: modulePkg("Jobs", "yawik/jobs", "1.0.0", jobsDir)})
	res := p.coord.OnPostAutoloadDump(p.coord.opts.Known)

	assert.True(t, res.Report.Empty())
	assert.Empty(t, res.Modules)
	assert.Equal(t, []assets.SummaryLine{{Kind: assets.SummarySuccess, Text: assets.MsgNoAssets}}, res.Report.Summary())
}

func TestFlush_UpdateReplacesKnownPath(t *testing.T) {
	p := newProject(t, func(l *modules.Loader, root string) []*modules.Module {
		old := testutil.CreateDir(t, root, "old/jobs")
		testutil.CreateDir(t, old, "public")
		return []*modules.Module{l.Load("Jobs", "yawik/jobs", "1.0.0", old)}
	})
	newDir := p.vendorModule(t, "jobs")

	p.coord.OnPostPackageUpdate(composer.Operation{Package: modulePkg("Jobs", "yawik/jobs", "1.1.0", newDir)})
	res := p.coord.OnPostAutoloadDump(p.coord.opts.Known)

	require.Len(t, res.Modules, 1)
	assert.Equal(t, "1.1.0", res.Modules[0].Version)
	assert.Equal(t, newDir, res.Modules[0].Path)
	assert.True(t, testutil.FileExists(t, filepath.Join(p.assetsRoot, "Jobs", "jobs.css")))
}
