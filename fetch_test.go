package pkgview_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgview "github.com/pkgview/pkgview"
	"github.com/pkgview/pkgview/diff"
	"github.com/pkgview/pkgview/internal/tartest"
)

// demoRegistry serves a two-version "demo" package and counts requests.
type demoRegistry struct {
	server        *httptest.Server
	packumentGets atomic.Int64
	tarballGets   atomic.Int64
}

func newDemoRegistry(t *testing.T) *demoRegistry {
	t.Helper()

	reg := &demoRegistry{}
	archives := map[string][]byte{
		"1.0.0": tartest.Archive(
			tartest.File{Name: "package/package.json", Content: `{"name":"demo","version":"1.0.0"}`},
			tartest.File{Name: "package/index.js", Content: "module.exports = 1;"},
			tartest.File{Name: "package/legacy.js", Content: "old"},
		),
		"1.1.0": tartest.Archive(
			tartest.File{Name: "package/package.json", Content: `{"name":"demo","version":"1.1.0"}`},
			tartest.File{Name: "package/index.js", Content: "module.exports = 2;"},
			tartest.File{Name: "package/lib/new.js", Content: "fresh"},
		),
	}

	reg.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/demo":
			reg.packumentGets.Add(1)
			base := "http://" + r.Host
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{
				"name": "demo",
				"dist-tags": {"latest": "1.1.0"},
				"versions": {
					"1.0.0": {"version": "1.0.0", "dist": {"tarball": "%s/demo/-/demo-1.0.0.tgz"}},
					"1.1.0": {"version": "1.1.0", "dist": {"tarball": "%s/demo/-/demo-1.1.0.tgz"}}
				}
			}`, base, base)
		case "/demo/-/demo-1.0.0.tgz":
			reg.tarballGets.Add(1)
			_, _ = w.Write(archives["1.0.0"])
		case "/demo/-/demo-1.1.0.tgz":
			reg.tarballGets.Add(1)
			_, _ = w.Write(archives["1.1.0"])
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(reg.server.Close)
	return reg
}

func TestClientFetchPackage(t *testing.T) {
	t.Parallel()

	reg := newDemoRegistry(t)
	c, err := pkgview.NewClient(pkgview.WithRegistryURL(reg.server.URL))
	require.NoError(t, err)

	pkg, err := c.FetchPackage(context.Background(), "demo@^1.0.0")
	require.NoError(t, err)

	assert.Equal(t, "demo", pkg.Name)
	assert.Equal(t, "1.1.0", pkg.Version)
	require.Len(t, pkg.Files, 3)
	assert.Equal(t, "package.json", pkg.Files[0].Path)

	_, err = c.FetchPackage(context.Background(), "demo@^9.0.0")
	assert.ErrorIs(t, err, pkgview.ErrNoMatchingVersion)

	_, err = c.FetchPackage(context.Background(), "ghost")
	assert.ErrorIs(t, err, pkgview.ErrNotFound)
}

func TestClientFetchPackageByURL(t *testing.T) {
	t.Parallel()

	reg := newDemoRegistry(t)
	c, err := pkgview.NewClient(pkgview.WithRegistryURL(reg.server.URL))
	require.NoError(t, err)

	pkg, err := c.FetchPackage(context.Background(), reg.server.URL+"/demo/-/demo-1.0.0.tgz")
	require.NoError(t, err)

	// Identity comes from the extracted package.json for URL specs.
	assert.Equal(t, "demo", pkg.Name)
	assert.Equal(t, "1.0.0", pkg.Version)
	assert.Equal(t, int64(0), reg.packumentGets.Load())
}

func TestClientFetchPackageCaching(t *testing.T) {
	t.Parallel()

	reg := newDemoRegistry(t)
	c, err := pkgview.NewClient(
		pkgview.WithRegistryURL(reg.server.URL),
		pkgview.WithCaching(time.Minute),
	)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := c.FetchPackage(context.Background(), "demo@1.1.0")
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), reg.packumentGets.Load())
	assert.Equal(t, int64(1), reg.tarballGets.Load())
}

func TestClientCompare(t *testing.T) {
	t.Parallel()

	reg := newDemoRegistry(t)
	c, err := pkgview.NewClient(pkgview.WithRegistryURL(reg.server.URL))
	require.NoError(t, err)

	report, err := c.Compare(context.Background(), "demo@1.0.0", "demo@latest")
	require.NoError(t, err)

	assert.Equal(t, diff.Ref{Name: "demo", Version: "1.0.0"}, report.Before)
	assert.Equal(t, diff.Ref{Name: "demo", Version: "1.1.0"}, report.After)
	assert.Equal(t, 1, report.Count(pkgview.Added))
	assert.Equal(t, 1, report.Count(pkgview.Removed))
	assert.Equal(t, 2, report.Count(pkgview.Modified))
	require.NotNil(t, report.ManifestPatch)
	assert.JSONEq(t, `{"version":"1.1.0"}`, string(report.ManifestPatch))
}

func TestClientCompareFetchFailure(t *testing.T) {
	t.Parallel()

	reg := newDemoRegistry(t)
	c, err := pkgview.NewClient(pkgview.WithRegistryURL(reg.server.URL))
	require.NoError(t, err)

	_, err = c.Compare(context.Background(), "demo@1.0.0", "ghost@1.0.0")
	assert.ErrorIs(t, err, pkgview.ErrNotFound)
}
