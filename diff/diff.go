// Package diff compares the extracted contents of two npm packages.
//
// A [Report] classifies every path across the two packages as added,
// removed, modified, or unchanged, carries per-file byte sizes for
// bundle-size comparison, and includes a JSON merge patch between the two
// package.json manifests.
package diff

import (
	"encoding/json"
	"sort"
	"sync"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/pkgview/pkgview/tarball"
)

// Status classifies one path across the compared packages.
type Status string

const (
	Added     Status = "added"
	Removed   Status = "removed"
	Modified  Status = "modified"
	Unchanged Status = "unchanged"
)

// FileChange describes one path across the two packages.
type FileChange struct {
	Path   string
	Status Status

	// BeforeSize and AfterSize are payload sizes in bytes; zero when the
	// file is absent on that side.
	BeforeSize int64
	AfterSize  int64
}

// Delta returns the size change in bytes for this path.
func (fc FileChange) Delta() int64 {
	return fc.AfterSize - fc.BeforeSize
}

// Ref identifies one side of a comparison.
type Ref struct {
	Name    string
	Version string
}

// Report summarizes the differences between two packages.
type Report struct {
	Before Ref
	After  Ref

	// Files lists every path present in either package, sorted by path.
	Files []FileChange

	// ManifestPatch is a JSON merge patch turning the before package.json
	// into the after one. Nil when either side lacks a manifest.
	ManifestPatch json.RawMessage

	// Lazy computed totals
	statsOnce   sync.Once
	beforeBytes int64
	afterBytes  int64
	counts      map[Status]int
}

// TotalBefore returns the summed payload size of the before package.
func (r *Report) TotalBefore() int64 {
	r.computeStats()
	return r.beforeBytes
}

// TotalAfter returns the summed payload size of the after package.
func (r *Report) TotalAfter() int64 {
	r.computeStats()
	return r.afterBytes
}

// TotalDelta returns the bundle-size change in bytes.
func (r *Report) TotalDelta() int64 {
	r.computeStats()
	return r.afterBytes - r.beforeBytes
}

// Count returns how many paths carry the given status.
func (r *Report) Count(status Status) int {
	r.computeStats()
	return r.counts[status]
}

// computeStats computes aggregate totals by iterating all changes.
func (r *Report) computeStats() {
	r.statsOnce.Do(func() {
		r.counts = make(map[Status]int, 4)
		for _, fc := range r.Files {
			r.beforeBytes += fc.BeforeSize
			r.afterBytes += fc.AfterSize
			r.counts[fc.Status]++
		}
	})
}

// Compare diffs two extracted packages.
func Compare(before, after *tarball.PackageContents) (*Report, error) {
	beforeFiles := index(before)
	afterFiles := index(after)

	paths := make([]string, 0, len(beforeFiles)+len(afterFiles))
	for path := range beforeFiles {
		paths = append(paths, path)
	}
	for path := range afterFiles {
		if _, ok := beforeFiles[path]; !ok {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)

	changes := make([]FileChange, 0, len(paths))
	for _, path := range paths {
		b, inBefore := beforeFiles[path]
		a, inAfter := afterFiles[path]

		fc := FileChange{
			Path:       path,
			BeforeSize: int64(len(b.Content)),
			AfterSize:  int64(len(a.Content)),
		}
		switch {
		case !inBefore:
			fc.Status = Added
		case !inAfter:
			fc.Status = Removed
		case b.Content != a.Content:
			fc.Status = Modified
		default:
			fc.Status = Unchanged
		}
		changes = append(changes, fc)
	}

	report := &Report{
		Before: Ref{Name: before.Name, Version: before.Version},
		After:  Ref{Name: after.Name, Version: after.Version},
		Files:  changes,
	}

	patch, err := manifestPatch(beforeFiles, afterFiles)
	if err != nil {
		return nil, err
	}
	report.ManifestPatch = patch
	return report, nil
}

// manifestPatch builds a JSON merge patch between the two package.json
// entries. Either side missing yields no patch.
func manifestPatch(before, after map[string]tarball.FileEntry) (json.RawMessage, error) {
	b, okBefore := before[tarball.ManifestPath]
	a, okAfter := after[tarball.ManifestPath]
	if !okBefore || !okAfter {
		return nil, nil
	}
	patch, err := jsonpatch.CreateMergePatch([]byte(b.Content), []byte(a.Content))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(patch), nil
}

func index(p *tarball.PackageContents) map[string]tarball.FileEntry {
	files := make(map[string]tarball.FileEntry, len(p.Files))
	for _, f := range p.Files {
		files[f.Path] = f
	}
	return files
}
