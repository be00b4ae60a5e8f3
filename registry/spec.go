package registry

import (
	"fmt"
	"strings"
)

// Spec is a parsed npm-style package specifier.
type Spec struct {
	// Name is the package name, possibly scoped ("@types/node").
	Name string

	// Range is the requested version, semver range, or dist-tag. Empty
	// means the "latest" tag.
	Range string

	// URL is set instead of Name/Range when the specifier is a direct
	// tarball URL.
	URL string
}

// String renders the specifier back in npm form.
func (s Spec) String() string {
	if s.URL != "" {
		return s.URL
	}
	if s.Range == "" {
		return s.Name
	}
	return s.Name + "@" + s.Range
}

// ParseSpec parses an npm-style package specifier: "name", "name@1.2.3",
// "name@^1.x", "name@next", "@scope/name@beta", or a direct tarball URL.
func ParseSpec(raw string) (Spec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Spec{}, fmt.Errorf("%w: empty", ErrInvalidSpec)
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return Spec{URL: raw}, nil
	}

	// The leading @ of a scoped name is not a version separator.
	name, rng := raw, ""
	if at := strings.LastIndexByte(raw, '@'); at > 0 {
		name, rng = raw[:at], raw[at+1:]
		if rng == "" {
			return Spec{}, fmt.Errorf("%w: %q has a trailing @", ErrInvalidSpec, raw)
		}
	}
	if name == "" || name == "@" || strings.HasSuffix(name, "/") {
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidSpec, raw)
	}
	if strings.HasPrefix(name, "@") && !strings.Contains(name, "/") {
		return Spec{}, fmt.Errorf("%w: scoped name %q is missing a package", ErrInvalidSpec, raw)
	}
	return Spec{Name: name, Range: rng}, nil
}
