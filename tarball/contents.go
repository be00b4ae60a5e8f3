package tarball

import (
	"encoding/json"
	"fmt"
)

// ManifestPath is the entry every valid npm package carries.
const ManifestPath = "package.json"

// Manifest holds the identity fields consumed from a package.json.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// PackageContents is an extracted package together with the name and
// version declared by its package.json.
type PackageContents struct {
	Name    string
	Version string
	Files   []FileEntry
}

// File returns the entry at path, or false if the package has none.
func (p *PackageContents) File(path string) (FileEntry, bool) {
	for _, f := range p.Files {
		if f.Path == path {
			return f, true
		}
	}
	return FileEntry{}, false
}

// ParseManifest locates package.json among extracted entries and parses
// its identity fields. It returns [ErrMissingManifest] when no entry
// exists and [ErrInvalidManifest] when the entry is not valid JSON.
func ParseManifest(files []FileEntry) (Manifest, error) {
	for _, f := range files {
		if f.Path != ManifestPath {
			continue
		}
		var m Manifest
		if err := json.Unmarshal([]byte(f.Content), &m); err != nil {
			return Manifest{}, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
		}
		return m, nil
	}
	return Manifest{}, ErrMissingManifest
}

// Contents extracts a package tarball and resolves the package name and
// version from its package.json.
func Contents(compressed []byte) (*PackageContents, error) {
	files, err := Extract(compressed)
	if err != nil {
		return nil, err
	}
	m, err := ParseManifest(files)
	if err != nil {
		return nil, err
	}
	return &PackageContents{
		Name:    m.Name,
		Version: m.Version,
		Files:   files,
	}, nil
}
