package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yawik/modsync/pkg/errors"
)

func TestError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  *errors.ModsyncError
		want string
	}{
		{
			name: "plain",
			err:  errors.New(errors.ErrInvalidInput, "assets root is required"),
			want: "[INVALID_INPUT] assets root is required",
		},
		{
			name: "formatted",
			err:  errors.Newf(errors.ErrStateRead, "%s has unsupported version %d", "state.yaml", 7),
			want: "[STATE_READ] state.yaml has unsupported version 7",
		},
		{
			name: "wrapped",
			err:  errors.Wrapf(fs.ErrPermission, errors.ErrRemoval, "could not remove %s", "public/modules/Core"),
			want: "[REMOVAL_FAILURE] could not remove public/modules/Core: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.NotNil(t, tt.err.Details)
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrCopy, "copy"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrCopy, "copy %s", "x"))
}

func TestWrap_Chain(t *testing.T) {
	root := &fs.PathError{Op: "symlink", Path: "/p/modules/Jobs", Err: fs.ErrPermission}
	linkErr := errors.Wrap(root, errors.ErrLinkCreate, "could not link Jobs")
	outer := fmt.Errorf("install Jobs: %w", linkErr)

	assert.True(t, stderrors.Is(outer, fs.ErrPermission))
	assert.True(t, stderrors.Is(outer, errors.New(errors.ErrLinkCreate, "")))
	assert.False(t, stderrors.Is(outer, errors.New(errors.ErrCopy, "")))

	var pathErr *fs.PathError
	require.True(t, stderrors.As(outer, &pathErr))
	assert.Equal(t, "symlink", pathErr.Op)
	assert.Same(t, root, linkErr.Unwrap())
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching", errors.New(errors.ErrConfigValid, "bad"), errors.ErrConfigValid, true},
		{"different", errors.New(errors.ErrConfigValid, "bad"), errors.ErrConfigParse, false},
		{"wrapped by fmt", fmt.Errorf("load: %w", errors.New(errors.ErrConfigLoad, "x")), errors.ErrConfigLoad, true},
		{"joined", stderrors.Join(stderrors.New("a"), errors.New(errors.ErrRemoval, "b")), errors.ErrRemoval, true},
		{"standard error", stderrors.New("plain"), errors.ErrUnknown, false},
		{"nil", nil, errors.ErrUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrManifestParse, errors.GetErrorCode(errors.New(errors.ErrManifestParse, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrPathOperation, "chmod failed").
		WithDetail("path", "/p/var/cache").
		WithDetail("mode", 0o777)

	assert.Equal(t, "/p/var/cache", err.Details["path"])
	assert.Equal(t, 0o777, err.Details["mode"])

	bare := &errors.ModsyncError{Code: errors.ErrPathOperation}
	bare.WithDetail("k", "v")
	assert.Equal(t, "v", bare.Details["k"])
}
