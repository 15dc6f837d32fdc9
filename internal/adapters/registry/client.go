// Package registry implements the PackageSource port against an
// npm-style package registry.
package registry

import (
	"context"
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"time"

	"go.bendn.dev/gpm/internal/core/domain"
	"go.bendn.dev/gpm/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 30 * time.Second

var _ ports.PackageSource = (*Client)(nil)

// Client resolves, downloads and verifies packages against a registry
// speaking the npm metadata protocol: GET {base}/{name}/{version}
// returns a document with "dependencies" and "dist" fields.
type Client struct {
	baseURL    string
	store      *Store
	logger     ports.Logger
	httpClient *http.Client

	// meta memoizes metadata per name@version for the lifetime of the
	// client, so resolving and locking the same tree does not refetch.
	meta map[string]*packageMetadata
}

// packageMetadata is the subset of the registry version document this
// layer consumes.
type packageMetadata struct {
	Dependencies map[string]string `json:"dependencies"`
	Dist         dist              `json:"dist"`
}

type dist struct {
	Tarball   string `json:"tarball"`
	Integrity string `json:"integrity"`
}

// NewClient creates a registry client with the default HTTP client.
func NewClient(baseURL string, store *Store, logger ports.Logger) *Client {
	return newClientWithHTTPClient(baseURL, store, logger, &http.Client{
		Timeout: httpClientTimeout,
	})
}

// newClientWithHTTPClient creates a Client with a custom http client (used for testing).
func newClientWithHTTPClient(baseURL string, store *Store, logger ports.Logger, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		store:      store,
		logger:     logger,
		httpClient: httpClient,
		meta:       make(map[string]*packageMetadata),
	}
}

// Resolve populates the package's dependency subtree from registry
// metadata. Dependencies are ordered by the package total order before
// their own subtrees are built, so hydration is deterministic.
//
// Logically identical packages reachable through different branches are
// resolved independently and never deduplicated.
func (c *Client) Resolve(ctx context.Context, pkg *domain.Package) error {
	meta, err := c.metadata(ctx, pkg)
	if err != nil {
		return err
	}

	deps := make([]*domain.Package, 0, len(meta.Dependencies))
	for name, version := range meta.Dependencies {
		deps = append(deps, domain.NewPackage(name, version))
	}
	slices.SortFunc(deps, (*domain.Package).Compare)

	for _, dep := range deps {
		if err := c.Resolve(ctx, dep); err != nil {
			return zerr.With(err, "dependent", pkg.String())
		}
	}

	pkg.Dependencies = deps
	return nil
}

// Download fetches the package archive into the store and marks the
// package installed. An archive already in the store is not refetched.
func (c *Client) Download(ctx context.Context, pkg *domain.Package) error {
	if c.store.Has(pkg) {
		pkg.Installed = true
		return nil
	}

	meta, err := c.metadata(ctx, pkg)
	if err != nil {
		return err
	}
	if meta.Dist.Tarball == "" {
		err := zerr.With(domain.ErrMetadataParseFailed, "package", pkg.String())
		return zerr.With(err, "missing_field", "dist.tarball")
	}

	data, err := c.fetch(ctx, meta.Dist.Tarball)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrArchiveFetchFailed.Error())
		return zerr.With(err, "package", pkg.String())
	}

	if err := c.store.Put(pkg, data); err != nil {
		return err
	}

	pkg.Installed = true
	c.logger.Info("downloaded " + pkg.String())
	return nil
}

// Integrity returns the integrity string for the package, preferring the
// registry-advertised value and otherwise hashing the stored archive.
func (c *Client) Integrity(ctx context.Context, pkg *domain.Package) (string, error) {
	if meta, err := c.metadata(ctx, pkg); err == nil && meta.Dist.Integrity != "" {
		return meta.Dist.Integrity, nil
	}

	data, err := c.store.Get(pkg)
	if err != nil {
		return "", err
	}

	sum := sha512.Sum512(data)
	return "sha512-" + base64.StdEncoding.EncodeToString(sum[:]), nil
}

// metadata returns the registry version document for a package, fetching
// it at most once per client.
func (c *Client) metadata(ctx context.Context, pkg *domain.Package) (*packageMetadata, error) {
	if meta, ok := c.meta[pkg.String()]; ok {
		return meta, nil
	}

	// Scoped names ("@scope/name") are path-escaped per the npm convention.
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(pkg.Name), url.PathEscape(pkg.Version))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrMetadataFetchFailed.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrMetadataFetchFailed.Error())
		return nil, zerr.With(err, "package", pkg.String())
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode == http.StatusNotFound {
		return nil, zerr.With(domain.ErrPackageNotFound, "package", pkg.String())
	}
	if resp.StatusCode != http.StatusOK {
		err := zerr.With(domain.ErrMetadataFetchFailed, "package", pkg.String())
		return nil, zerr.With(err, "status", resp.Status)
	}

	var meta packageMetadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		err = zerr.Wrap(err, domain.ErrMetadataParseFailed.Error())
		return nil, zerr.With(err, "package", pkg.String())
	}

	c.meta[pkg.String()] = &meta
	return &meta, nil
}

// fetch retrieves a URL and returns the response body.
func (c *Client) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(zerr.New("unexpected status"), "status", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
