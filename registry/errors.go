package registry

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrInvalidSpec is returned when a package specifier is malformed.
	ErrInvalidSpec = errors.New("registry: invalid package specifier")

	// ErrNotFound is returned when the registry has no document for the
	// requested package.
	ErrNotFound = errors.New("registry: package not found")

	// ErrNoMatchingVersion is returned when no published version satisfies
	// the requested version, range, or dist-tag.
	ErrNoMatchingVersion = errors.New("registry: no matching version")

	// ErrUnexpectedStatus is returned when the registry answers with a
	// status the client does not handle.
	ErrUnexpectedStatus = errors.New("registry: unexpected response status")
)
