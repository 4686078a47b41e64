package settingsfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	s := New(path)

	_, found, err := s.Get(ctx, "opgaver:monthlyAssignment")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "opgaver:monthlyAssignment", "overflader-on-groupA"))
	require.NoError(t, s.Set(ctx, "opgaver:monthlyGroups", `{"groupA":["NA"],"groupB":["OL"]}`))

	// a second store on the same file sees the values
	other := New(path)
	v, found, err := other.Get(ctx, "opgaver:monthlyAssignment")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "overflader-on-groupA", v)

	require.NoError(t, s.Delete(ctx, "opgaver:monthlyAssignment"))
	require.NoError(t, s.Delete(ctx, "missing"))

	_, found, err = other.Get(ctx, "opgaver:monthlyAssignment")
	require.NoError(t, err)
	assert.False(t, found)

	v, _, err = other.Get(ctx, "opgaver:monthlyGroups")
	require.NoError(t, err)
	assert.Equal(t, `{"groupA":["NA"],"groupB":["OL"]}`, v)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o600))

	_, _, err := New(path).Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "chore-board", "settings.json"), DefaultPath())
	assert.Equal(t, DefaultPath(), New("").Path())
}
