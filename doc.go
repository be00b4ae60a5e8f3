// Package pkgview inspects published npm packages: it resolves package
// specifiers, extracts tarball contents, compares versions, and fetches
// download analytics and repository pull requests.
//
// This package provides a unified high-level API through [Client]. For
// low-level access use the subpackages directly: [registry] for the npm
// registry and downloads API, [tarball] for archive extraction, [diff]
// for package comparison, and [prs] for GitHub pull requests.
//
// # Quick Start
//
// Fetch a package's files:
//
//	c, err := pkgview.NewClient()
//	if err != nil {
//	    return err
//	}
//	pkg, err := c.FetchPackage(ctx, "react@18.2.0")
//	if err != nil {
//	    return err
//	}
//	for _, f := range pkg.Files {
//	    fmt.Println(f.Path)
//	}
//
// Compare two versions:
//
//	report, err := c.Compare(ctx, "react@18.1.0", "react@18.2.0")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("bundle delta: %+d bytes\n", report.TotalDelta())
//
// # Caching
//
// Use WithCaching to reuse packuments and tarball bytes across calls:
//
//	c, err := pkgview.NewClient(pkgview.WithCaching(5 * time.Minute))
//
// For fine-grained control supply your own implementations via
// [WithPackumentCache] and [WithTarballCache].
package pkgview
