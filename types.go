package pkgview

import (
	"github.com/pkgview/pkgview/diff"
	"github.com/pkgview/pkgview/prs"
	"github.com/pkgview/pkgview/registry"
	"github.com/pkgview/pkgview/tarball"
)

// --- Re-exports from tarball ---

// FileEntry is a regular file recovered from a package tarball.
type FileEntry = tarball.FileEntry

// PackageContents is an extracted package plus its declared identity.
type PackageContents = tarball.PackageContents

// --- Re-exports from registry ---

// Spec is a parsed npm-style package specifier.
type Spec = registry.Spec

// Packument is the registry's full document for a package.
type Packument = registry.Packument

// Version is one published version inside a packument.
type Version = registry.Version

// DownloadRange is a daily download-count series for one package.
type DownloadRange = registry.DownloadRange

// DownloadDay is the download count for a single day.
type DownloadDay = registry.DownloadDay

// ParseSpec parses an npm-style package specifier.
var ParseSpec = registry.ParseSpec

// --- Re-exports from diff ---

// Report summarizes the differences between two packages.
type Report = diff.Report

// FileChange describes one path across two compared packages.
type FileChange = diff.FileChange

// Change statuses re-exported from diff.
const (
	Added     = diff.Added
	Removed   = diff.Removed
	Modified  = diff.Modified
	Unchanged = diff.Unchanged
)

// --- Re-exports from prs ---

// PullRequest is the subset of pull request data the dashboard renders.
type PullRequest = prs.PullRequest
