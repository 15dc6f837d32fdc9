package app_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bendn.dev/gpm/internal/adapters/manifest"
	"go.bendn.dev/gpm/internal/app"
	"go.bendn.dev/gpm/internal/core/domain"
	"go.bendn.dev/gpm/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// Integrity digests fixed by the @bendn fixture packages.
const (
	testIntegrity  = "sha512-hyPGxDG8poa2ekmWr1BeTCUa7YaZYfhsN7jcLJ3q2cQVlowcTnzqmz4iV3t21QFyabE5R+rV+y6d5dAItrJeDw=="
	gdcliIntegrity = "sha512-/YOAd1+K4JlKvPTmpX8B7VWxGtFrxKq4R0A6u5qOaaVPK6uGsl4dGZaIHpxuqcurEcwPEOabkoShXKZaOXB0lw=="
)

type fixture struct {
	app    *app.App
	source *mocks.MockPackageSource
	logger *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	source := mocks.NewMockPackageSource(ctrl)

	return &fixture{
		app:    app.New(manifest.NewLoader(mockLogger), source, mockLogger),
		source: source,
		logger: mockLogger,
	}
}

// bendnForest is the fixture tree: @bendn/test@2.0.10 depending on
// @bendn/gdcli@1.2.5.
func bendnForest() *domain.ConfigFile {
	test := domain.NewPackage("@bendn/test", "2.0.10")
	test.Dependencies = []*domain.Package{domain.NewPackage("@bendn/gdcli", "1.2.5")}
	return domain.NewConfigFile([]*domain.Package{test})
}

func TestApp_Load_HydratesDependencyTree(t *testing.T) {
	f := newFixture(t)

	f.source.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pkg *domain.Package) error {
			require.Equal(t, "@bendn/test@2.0.10", pkg.String())
			pkg.Dependencies = []*domain.Package{domain.NewPackage("@bendn/gdcli", "1.2.5")}
			return nil
		})

	cfg, err := f.app.Load(t.Context(), []byte(`dependencies: {"@bendn/test": "2.0.10"}`))
	require.NoError(t, err)

	require.Len(t, cfg.Packages, 1)
	assert.Equal(t, "@bendn/test@2.0.10", cfg.Packages[0].String())
	require.Len(t, cfg.Packages[0].Dependencies, 1)
	assert.Equal(t, "@bendn/gdcli@1.2.5", cfg.Packages[0].Dependencies[0].String())
}

func TestApp_Load_PanicsOnUnparseableManifest(t *testing.T) {
	f := newFixture(t)

	assert.Panics(t, func() {
		_, _ = f.app.Load(t.Context(), []byte("@@@ not a manifest @@@"))
	})
}

func TestApp_Load_ResolveFailure(t *testing.T) {
	f := newFixture(t)

	f.source.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(zerr.New("registry unreachable"))

	cfg, err := f.app.Load(t.Context(), []byte(`{"packages": {"@bendn/test": "2.0.10"}}`))
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "failed to resolve dependency tree")
}

func TestApp_LoadJSON_Recoverable(t *testing.T) {
	f := newFixture(t)

	cfg, err := f.app.LoadJSON([]byte("@@@ not a manifest @@@"))
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "failed to decode manifest")
}

func TestApp_DownloadAll_VisitsEveryNodeOnce(t *testing.T) {
	f := newFixture(t)
	cfg := bendnForest()

	var downloaded []string
	f.source.EXPECT().
		Download(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pkg *domain.Package) error {
			downloaded = append(downloaded, pkg.String())
			pkg.Installed = true
			return nil
		}).
		Times(2)

	require.NoError(t, f.app.DownloadAll(t.Context(), cfg))
	assert.Equal(t, []string{"@bendn/test@2.0.10", "@bendn/gdcli@1.2.5"}, downloaded)
}

func TestApp_DownloadAll_CollectsFailuresWithoutStopping(t *testing.T) {
	f := newFixture(t)
	cfg := bendnForest()

	calls := 0
	f.source.EXPECT().
		Download(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pkg *domain.Package) error {
			calls++
			if pkg.Name == "@bendn/test" {
				return zerr.New("tarball unavailable")
			}
			return nil
		}).
		Times(2)

	err := f.app.DownloadAll(t.Context(), cfg)
	assert.Error(t, err)
	assert.Equal(t, 2, calls, "a failed download must not stop the walk")
}

func TestApp_Lock_EndToEnd(t *testing.T) {
	f := newFixture(t)
	cfg := bendnForest()

	cfg.ForEach(func(pkg *domain.Package) {
		pkg.Installed = true
	})

	digests := map[string]string{
		"@bendn/test":  testIntegrity,
		"@bendn/gdcli": gdcliIntegrity,
	}
	f.source.EXPECT().
		Integrity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pkg *domain.Package) (string, error) {
			return digests[pkg.Name], nil
		}).
		Times(2)

	out, err := f.app.Lock(t.Context(), cfg)
	require.NoError(t, err)

	var entries []domain.LockEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, []domain.LockEntry{
		{Name: "@bendn/test", Version: "2.0.10", Integrity: testIntegrity},
		{Name: "@bendn/gdcli", Version: "1.2.5", Integrity: gdcliIntegrity},
	}, entries)

	g := goldie.New(t)
	g.Assert(t, "lockfile", []byte(out))
}

func TestApp_Lock_FiltersUninstalled(t *testing.T) {
	f := newFixture(t)
	cfg := bendnForest()

	// Only the top-level package is installed; the dependency is
	// silently excluded, not reported.
	cfg.Packages[0].Installed = true
	cfg.Packages[0].Integrity = testIntegrity

	out, err := f.app.Lock(t.Context(), cfg)
	require.NoError(t, err)

	var entries []domain.LockEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, []domain.LockEntry{
		{Name: "@bendn/test", Version: "2.0.10", Integrity: testIntegrity},
	}, entries)
}

func TestApp_Lock_UsesExistingIntegrity(t *testing.T) {
	f := newFixture(t)
	cfg := bendnForest()

	cfg.ForEach(func(pkg *domain.Package) {
		pkg.Installed = true
		pkg.Integrity = "sha512-" + pkg.Name
	})

	// No Integrity expectation: the source must not be consulted.
	out, err := f.app.Lock(t.Context(), cfg)
	require.NoError(t, err)

	var entries []domain.LockEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "sha512-@bendn/test", entries[0].Integrity)
}

func TestApp_Lock_IntegrityFailureIsFatalToLock(t *testing.T) {
	f := newFixture(t)
	cfg := bendnForest()

	cfg.ForEach(func(pkg *domain.Package) {
		pkg.Installed = true
	})

	f.source.EXPECT().
		Integrity(gomock.Any(), gomock.Any()).
		Return("", zerr.New("archive corrupted"))

	out, err := f.app.Lock(t.Context(), cfg)
	assert.Empty(t, out, "no partial lockfile may be emitted")
	assert.ErrorContains(t, err, "failed to compute package integrity")
}

func TestApp_Lock_EmptyForest(t *testing.T) {
	f := newFixture(t)

	out, err := f.app.Lock(t.Context(), domain.NewConfigFile(nil))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}
