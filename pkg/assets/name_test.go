package assets

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/filesystem"
	"github.com/yawik/modsync/pkg/testutil"
	"github.com/yawik/modsync/pkg/types"
)

var unsafeNames = []string{"", ".", "..", "../public", "a/b", "/abs", `a\b`}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"Core", "Jobs", "Yawik.Auth", "my-module", "..Hidden"} {
		assert.NoError(t, ValidateName(name), name)
	}
	for _, name := range unsafeNames {
		err := ValidateName(name)
		require.Error(t, err, "%q", name)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "%q", name)
	}
}

func TestInstall_RejectsUnsafeNames(t *testing.T) {
	s := newSandbox(t)
	p := s.publisher(t, filesystem.NewOS())
	require.False(t, p.Install(s.modules(), types.MethodRelativeSymlink).Failed())

	public := filepath.Dir(s.assetsRoot)
	testutil.CreateFile(t, public, "index.php", "<?php\n")

	for _, name := range unsafeNames {
		t.Run(name, func(t *testing.T) {
			m := types.NewModuleAssetMap()
			m.Set(name, s.foo)

			report := p.Install(m, types.MethodCopy)

			require.Len(t, report.Results, 1)
			res := report.Results[0]
			assert.Equal(t, types.OutcomeError, res.Outcome)
			assert.True(t, errors.IsErrorCode(res.Err, errors.ErrInvalidInput))
			assert.Empty(t, res.Target)
			assert.Equal(t, 1, report.ExitCode)
		})
	}

	assert.True(t, testutil.FileExists(t, filepath.Join(public, "index.php")))
	assert.True(t, testutil.IsSymlink(t, filepath.Join(s.assetsRoot, "Foo")))
	assert.True(t, testutil.IsSymlink(t, filepath.Join(s.assetsRoot, "Hello")))
	assert.False(t, testutil.PathExists(t, filepath.Join(s.assetsRoot, "a")))
}

func TestUninstall_RejectsUnsafeNames(t *testing.T) {
	s := newSandbox(t)
	p := s.publisher(t, filesystem.NewOS())
	require.False(t, p.Install(s.modules(), types.MethodRelativeSymlink).Failed())

	removed, err := p.Uninstall(append(append([]string{}, unsafeNames...), "Hello"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, []string{"Hello"}, removed)

	assert.True(t, testutil.DirExists(t, s.assetsRoot))
	assert.True(t, testutil.IsSymlink(t, filepath.Join(s.assetsRoot, "Foo")))
}

func TestInspect_UnsafeNameIsMissing(t *testing.T) {
	s := newSandbox(t)
	p := s.publisher(t, filesystem.NewOS())
	require.False(t, p.Install(s.modules(), types.MethodRelativeSymlink).Failed())

	statuses := p.Inspect([]string{".."})
	require.Len(t, statuses, 1)
	assert.Equal(t, StateMissing, statuses[0].State)
	assert.Empty(t, statuses[0].Target)
}
