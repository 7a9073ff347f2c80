package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	err := fs.WriteFile(testFile, testContent, 0644)
	require.NoError(t, err)

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(tmpDir, "sub", "dir")
	err = fs.MkdirAll(subDir, 0755)
	require.NoError(t, err)

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2) // test.txt and sub/

	err = fs.Remove(testFile)
	require.NoError(t, err)
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestOS_Symlinks(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()

	origin := filepath.Join(tmpDir, "origin")
	require.NoError(t, fs.MkdirAll(origin, 0755))
	link := filepath.Join(tmpDir, "link")

	require.NoError(t, fs.Symlink(origin, link))
	assert.True(t, IsSymlink(fs, link))
	assert.True(t, IsDir(fs, link))

	target, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, origin, target)

	real, err := fs.Realpath(link)
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(origin)
	require.NoError(t, err)
	assert.Equal(t, expected, real)

	// RemoveAll on a link removes the link, not the origin
	require.NoError(t, fs.RemoveAll(link))
	assert.False(t, Exists(fs, link))
	assert.True(t, IsDir(fs, origin))
}

func TestOS_DanglingLinkStillExists(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()
	link := filepath.Join(tmpDir, "dangling")

	require.NoError(t, fs.Symlink(filepath.Join(tmpDir, "nowhere"), link))
	assert.True(t, Exists(fs, link))
	assert.False(t, IsDir(fs, link))
	_, err := fs.Stat(link)
	assert.True(t, IsNotExist(err))
}

// basicFs hides every optional afero capability of the wrapped filesystem
type basicFs struct {
	afero.Fs
}

func TestAfero_WithoutSymlinkSupport(t *testing.T) {
	fs := NewAferoFS(basicFs{afero.NewMemMapFs()})
	require.NoError(t, fs.MkdirAll("/origin", 0755))

	err := fs.Symlink("/origin", "/link")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSymlinkUnsupported))

	var linkErr *os.LinkError
	assert.True(t, errors.As(err, &linkErr))

	_, err = fs.Readlink("/origin")
	assert.True(t, errors.Is(err, ErrSymlinkUnsupported))

	// Lstat falls back to Stat
	info, err := fs.Lstat("/origin")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestAfero_Realpath(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.MkdirAll("/a/b", 0755))

	real, err := fs.Realpath("/a/./b/")
	require.NoError(t, err)
	assert.Equal(t, "/a/b", real)

	_, err = fs.Realpath("/missing")
	assert.Error(t, err)
}

func TestAfero_ReadFileOnDirectory(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.MkdirAll("/dir", 0755))

	_, err := fs.ReadFile("/dir")
	assert.Error(t, err)
}

func TestAfero_OpenFileAndChmod(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())
	f, err := fs.OpenFile("/touched", os.O_CREATE|os.O_WRONLY, 0600)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, fs.Chmod("/touched", 0666))
	info, err := fs.Stat("/touched")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0666), info.Mode().Perm())
	assert.True(t, IsFile(fs, "/touched"))
}
