package pkgview

import (
	"context"

	"github.com/pkgview/pkgview/registry"
	"github.com/pkgview/pkgview/tarball"
)

// Package is the fully fetched contents of one npm package.
type Package struct {
	// Spec is the specifier the package was fetched with.
	Spec string

	// Name and Version identify the resolved package.
	Name    string
	Version string

	// TarballURL is the URL the tarball was downloaded from.
	TarballURL string

	// Files are the package's regular files in archive order.
	Files []FileEntry
}

// Contents adapts the package for [diff.Compare] and other consumers of
// extracted contents.
func (p *Package) Contents() *PackageContents {
	return &tarball.PackageContents{
		Name:    p.Name,
		Version: p.Version,
		Files:   p.Files,
	}
}

// FetchPackage resolves an npm-style specifier, downloads the package
// tarball, and extracts its files.
//
// For registry specifiers the package identity comes from version
// resolution; for direct tarball URLs it is read from the extracted
// package.json. Configured caches are consulted for both the packument
// and the tarball bytes.
func (c *Client) FetchPackage(ctx context.Context, rawSpec string) (*Package, error) {
	spec, err := registry.ParseSpec(rawSpec)
	if err != nil {
		return nil, err
	}

	pkg := &Package{Spec: rawSpec}
	if spec.URL != "" {
		pkg.TarballURL = spec.URL
	} else {
		doc, err := c.packument(ctx, spec.Name)
		if err != nil {
			return nil, err
		}
		v, err := doc.Resolve(spec.Range)
		if err != nil {
			return nil, err
		}
		pkg.Name = spec.Name
		pkg.Version = v.Version
		pkg.TarballURL = v.Dist.Tarball
	}

	data, err := c.tarball(ctx, pkg.TarballURL)
	if err != nil {
		return nil, err
	}
	files, err := tarball.Extract(data)
	if err != nil {
		return nil, err
	}
	pkg.Files = files

	if pkg.Name == "" {
		m, err := tarball.ParseManifest(files)
		if err != nil {
			return nil, err
		}
		pkg.Name = m.Name
		pkg.Version = m.Version
	}

	c.log().Debug("fetched package",
		"spec", rawSpec, "name", pkg.Name, "version", pkg.Version, "files", len(pkg.Files))
	return pkg, nil
}

// packument returns the package document, consulting the cache first.
func (c *Client) packument(ctx context.Context, name string) (*Packument, error) {
	if c.packuments != nil {
		if doc, ok := c.packuments.Get(name); ok {
			c.log().Debug("packument cache hit", "package", name)
			return doc, nil
		}
	}
	doc, err := c.registry.Packument(ctx, name)
	if err != nil {
		return nil, err
	}
	if c.packuments != nil {
		c.packuments.Put(name, doc)
	}
	return doc, nil
}

// tarball returns the tarball bytes, consulting the cache first.
func (c *Client) tarball(ctx context.Context, url string) ([]byte, error) {
	if c.tarballs != nil {
		if data, ok := c.tarballs.Get(url); ok {
			c.log().Debug("tarball cache hit", "url", url)
			return data, nil
		}
	}
	data, err := c.registry.Tarball(ctx, url)
	if err != nil {
		return nil, err
	}
	if c.tarballs != nil {
		c.tarballs.Put(url, data)
	}
	return data, nil
}
