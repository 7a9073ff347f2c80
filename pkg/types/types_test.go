package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePublishMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    PublishMethod
		wantErr bool
	}{
		{"", MethodRelativeSymlink, false},
		{"relative", MethodRelativeSymlink, false},
		{"Relative Symlink", MethodRelativeSymlink, false},
		{"absolute", MethodAbsoluteSymlink, false},
		{"symlink", MethodAbsoluteSymlink, false},
		{"absolute symlink", MethodAbsoluteSymlink, false},
		{" copy ", MethodCopy, false},
		{"hard-copy", MethodCopy, false},
		{"hardlink", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePublishMethod(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPublishMethodOrder(t *testing.T) {
	assert.Equal(t, []PublishMethod{MethodRelativeSymlink, MethodAbsoluteSymlink, MethodCopy}, PublishMethods)
	assert.True(t, MethodRelativeSymlink.IsSymlink())
	assert.True(t, MethodAbsoluteSymlink.IsSymlink())
	assert.False(t, MethodCopy.IsSymlink())
}

func TestPublishResultDetail(t *testing.T) {
	ok := PublishResult{Name: "Foo", Outcome: OutcomeOk, Method: MethodRelativeSymlink}
	assert.Equal(t, "relative symlink", ok.Detail())

	failed := PublishResult{Name: "Foo", Outcome: OutcomeError, Err: errors.New("permission denied")}
	assert.Equal(t, "permission denied", failed.Detail())
}

func TestModuleAssetMap(t *testing.T) {
	m := NewModuleAssetMap()
	m.Set("Hello", "/fixtures/hello")
	m.Set("Foo", "/fixtures/foo")
	m.Set("Hello", "/fixtures/hello2")

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"Hello", "Foo"}, m.Names())

	dir, ok := m.Get("Hello")
	assert.True(t, ok)
	assert.Equal(t, "/fixtures/hello2", dir)

	_, ok = m.Get("Missing")
	assert.False(t, ok)

	var visited []string
	m.Each(func(name, dir string) {
		visited = append(visited, name+"="+dir)
	})
	assert.Equal(t, []string{"Hello=/fixtures/hello2", "Foo=/fixtures/foo"}, visited)

	// Names hands out a copy
	names := m.Names()
	names[0] = "Changed"
	assert.Equal(t, []string{"Hello", "Foo"}, m.Names())
}

func TestModuleAssetMap_ZeroAndNil(t *testing.T) {
	var nilMap *ModuleAssetMap
	assert.Equal(t, 0, nilMap.Len())
	assert.Nil(t, nilMap.Names())
	nilMap.Each(func(string, string) { t.Fatal("unexpected entry") })

	var zero ModuleAssetMap
	zero.Set("Foo", "/foo")
	assert.Equal(t, []string{"Foo"}, zero.Names())
}
