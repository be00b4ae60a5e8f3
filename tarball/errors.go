package tarball

import "errors"

// Sentinel errors for tarball extraction.
var (
	// ErrDecompression is returned when the input is not valid gzip data.
	ErrDecompression = errors.New("tarball: decompression failed")

	// ErrMissingManifest is returned when the archive contains no package.json.
	ErrMissingManifest = errors.New("tarball: missing package.json")

	// ErrInvalidManifest is returned when package.json cannot be parsed as JSON.
	ErrInvalidManifest = errors.New("tarball: invalid package.json")
)
