package wiring_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bendn.dev/gpm/internal/wiring"
)

func TestNewApp(t *testing.T) {
	a, err := wiring.NewApp("https://registry.example", filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)
	assert.NotNil(t, a)
}

func TestNewApp_StoreCreationFailure(t *testing.T) {
	// A regular file where the store directory should go.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := wiring.NewApp("https://registry.example", blocker)
	assert.ErrorContains(t, err, "failed to create archive store directory")
}
