package registry_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkgview/pkgview/internal/tartest"
	"github.com/pkgview/pkgview/registry"
)

const demoPackument = `{
	"_id": "demo",
	"name": "demo",
	"dist-tags": {"latest": "1.1.0"},
	"versions": {
		"1.0.0": {"name": "demo", "version": "1.0.0", "dist": {"tarball": "https://r/demo-1.0.0.tgz"}},
		"1.1.0": {"name": "demo", "version": "1.1.0", "dist": {"tarball": "https://r/demo-1.1.0.tgz", "unpackedSize": 2048}}
	}
}`

func TestClientPackument(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/demo" {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(demoPackument))
	}))
	t.Cleanup(server.Close)

	c := registry.New(registry.WithRegistryURL(server.URL))

	doc, err := c.Packument(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", doc.Name)
	assert.Equal(t, "1.1.0", doc.DistTags["latest"])
	assert.Equal(t, int64(2048), doc.Versions["1.1.0"].Dist.UnpackedSize)

	_, err = c.Packument(context.Background(), "missing")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestClientResolve(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(demoPackument))
	}))
	t.Cleanup(server.Close)

	c := registry.New(registry.WithRegistryURL(server.URL))

	spec, err := registry.ParseSpec("demo@^1.0.0")
	require.NoError(t, err)

	v, err := c.Resolve(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", v.Version)
	assert.Equal(t, "https://r/demo-1.1.0.tgz", v.Dist.Tarball)
}

func TestClientResolveRejectsURLSpec(t *testing.T) {
	t.Parallel()

	c := registry.New()
	_, err := c.Resolve(context.Background(), registry.Spec{URL: "https://x/y.tgz"})
	assert.ErrorIs(t, err, registry.ErrInvalidSpec)
}

func TestClientTarball(t *testing.T) {
	t.Parallel()

	archive := tartest.Archive(
		tartest.File{Name: "package/package.json", Content: `{"name":"demo","version":"1.1.0"}`},
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/demo/-/demo-1.1.0.tgz" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(archive)
	}))
	t.Cleanup(server.Close)

	c := registry.New(registry.WithUserAgent("pkgview-test"))

	data, err := c.Tarball(context.Background(), server.URL+"/demo/-/demo-1.1.0.tgz")
	require.NoError(t, err)
	assert.Equal(t, archive, data)

	_, err = c.Tarball(context.Background(), server.URL+"/demo/-/missing.tgz")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestClientDownloads(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/downloads/range/last-week/demo" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"package": "demo",
			"start": "2026-08-17",
			"end": "2026-08-23",
			"downloads": [
				{"day": "2026-08-17", "downloads": 120},
				{"day": "2026-08-18", "downloads": 80}
			]
		}`))
	}))
	t.Cleanup(server.Close)

	c := registry.New(registry.WithDownloadsURL(server.URL))

	rng, err := c.Downloads(context.Background(), "demo", registry.RangeLastWeek)
	require.NoError(t, err)
	assert.Equal(t, "demo", rng.Package)
	require.Len(t, rng.Downloads, 2)
	assert.Equal(t, int64(200), rng.Total())
}

func TestClientUnexpectedStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c := registry.New(registry.WithRegistryURL(server.URL))
	_, err := c.Packument(context.Background(), "demo")
	assert.ErrorIs(t, err, registry.ErrUnexpectedStatus)
}
