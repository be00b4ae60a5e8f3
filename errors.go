package pkgview

import (
	"github.com/pkgview/pkgview/registry"
	"github.com/pkgview/pkgview/tarball"
)

// Errors re-exported from tarball.
var (
	// ErrDecompression is returned when a tarball is not valid gzip data.
	ErrDecompression = tarball.ErrDecompression

	// ErrMissingManifest is returned when a package has no package.json.
	ErrMissingManifest = tarball.ErrMissingManifest

	// ErrInvalidManifest is returned when package.json is not valid JSON.
	ErrInvalidManifest = tarball.ErrInvalidManifest
)

// Errors re-exported from registry.
var (
	// ErrInvalidSpec is returned when a package specifier is malformed.
	ErrInvalidSpec = registry.ErrInvalidSpec

	// ErrNotFound is returned when the registry has no such package.
	ErrNotFound = registry.ErrNotFound

	// ErrNoMatchingVersion is returned when no published version satisfies
	// the requested version, range, or dist-tag.
	ErrNoMatchingVersion = registry.ErrNoMatchingVersion

	// ErrUnexpectedStatus is returned on unhandled registry responses.
	ErrUnexpectedStatus = registry.ErrUnexpectedStatus
)
