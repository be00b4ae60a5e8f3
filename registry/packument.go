package registry

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Packument is the registry's full document for a package: every published
// version plus the dist-tag map.
type Packument struct {
	ID          string             `json:"_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	DistTags    map[string]string  `json:"dist-tags"`
	Versions    map[string]Version `json:"versions"`
	Time        map[string]string  `json:"time"`
}

// Version is one published version inside a packument.
type Version struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Description  string            `json:"description"`
	Main         string            `json:"main"`
	License      string            `json:"license"`
	Dependencies map[string]string `json:"dependencies"`
	Dist         Dist              `json:"dist"`
}

// Dist carries the tarball location and integrity data for a version.
type Dist struct {
	Integrity    string `json:"integrity"`
	SHASum       string `json:"shasum"`
	Tarball      string `json:"tarball"`
	FileCount    int    `json:"fileCount"`
	UnpackedSize int64  `json:"unpackedSize"`
}

// Resolve picks the published version matching rng, which may be a
// dist-tag ("latest", "next"), an exact version, or a semver range
// ("^18.0.0", "18.x"). Ranges resolve to the highest satisfying version.
// An empty rng means the "latest" tag.
func (p *Packument) Resolve(rng string) (*Version, error) {
	if rng == "" {
		rng = "latest"
	}
	if tagged, ok := p.DistTags[rng]; ok {
		rng = tagged
	}
	if v, ok := p.Versions[rng]; ok {
		return &v, nil
	}

	constraint, err := semver.NewConstraint(rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %s@%s", ErrNoMatchingVersion, p.Name, rng)
	}

	var (
		best    *semver.Version
		bestRaw string
	)
	for raw := range p.Versions {
		v, err := semver.NewVersion(raw)
		if err != nil || !constraint.Check(v) {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestRaw = raw
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: %s@%s", ErrNoMatchingVersion, p.Name, rng)
	}

	v := p.Versions[bestRaw]
	return &v, nil
}
