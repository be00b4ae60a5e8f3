// Package cache provides caches for registry lookups and tarball
// downloads.
//
// Packuments churn as packages publish, so packument entries carry a TTL.
// Tarballs are immutable once published and are cached by URL with a byte
// budget instead.
package cache

import "github.com/pkgview/pkgview/registry"

// PackumentCache caches registry packuments by package name.
//
// This avoids refetching the full package document when resolving several
// specifiers for the same package.
type PackumentCache interface {
	// Get returns the cached packument for a package name, if present
	// and not expired.
	Get(name string) (*registry.Packument, bool)

	// Put caches a packument under the package name.
	Put(name string, doc *registry.Packument)

	// Delete removes a cached packument.
	Delete(name string)
}

// TarballCache caches downloaded tarball bytes by URL.
//
// This avoids redundant downloads when the same version is extracted or
// diffed repeatedly.
type TarballCache interface {
	// Get returns the cached bytes for a tarball URL.
	Get(url string) ([]byte, bool)

	// Put caches tarball bytes by URL.
	Put(url string, data []byte)

	// SizeBytes returns the current cache size in bytes.
	SizeBytes() int64
}
