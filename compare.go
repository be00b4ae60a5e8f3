package pkgview

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pkgview/pkgview/diff"
)

// Compare fetches two packages concurrently and diffs their contents.
//
// The report treats beforeSpec as the baseline, so a positive
// [diff.Report.TotalDelta] means afterSpec is larger.
func (c *Client) Compare(ctx context.Context, beforeSpec, afterSpec string) (*Report, error) {
	var before, after *Package

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.FetchPackage(ctx, beforeSpec)
		before = p
		return err
	})
	g.Go(func() error {
		p, err := c.FetchPackage(ctx, afterSpec)
		after = p
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return diff.Compare(before.Contents(), after.Contents())
}
