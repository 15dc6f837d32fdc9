package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bendn.dev/gpm/internal/core/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)

	pkg := domain.NewPackage("@bendn/test", "2.0.10")
	require.False(t, store.Has(pkg))

	data := []byte("archive bytes")
	require.NoError(t, store.Put(pkg, data))

	assert.True(t, store.Has(pkg))
	got, err := store.Get(pkg)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestStore_Get_Missing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(domain.NewPackage("@bendn/absent", "0.0.1"))
	assert.ErrorContains(t, err, "package archive not found in store")
}

func TestStore_DistinctVersionsDistinctArchives(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	v1 := domain.NewPackage("pkg", "1.0.0")
	v2 := domain.NewPackage("pkg", "2.0.0")

	require.NoError(t, store.Put(v1, []byte("one")))
	require.NoError(t, store.Put(v2, []byte("two")))

	one, err := store.Get(v1)
	require.NoError(t, err)
	two, err := store.Get(v2)
	require.NoError(t, err)

	assert.Equal(t, []byte("one"), one)
	assert.Equal(t, []byte("two"), two)
}

func TestStore_PutReplaces(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	pkg := domain.NewPackage("pkg", "1.0.0")
	require.NoError(t, store.Put(pkg, []byte("old")))
	require.NoError(t, store.Put(pkg, []byte("new")))

	got, err := store.Get(pkg)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}
