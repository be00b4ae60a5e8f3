package pkgview

import "context"

// Downloads fetches daily download counts for a package.
//
// rng accepts the ranges of the npm downloads API, e.g.
// [registry.RangeLastMonth] or an explicit "2026-01-01:2026-01-31" span.
// An empty rng means the last month.
func (c *Client) Downloads(ctx context.Context, name, rng string) (*DownloadRange, error) {
	return c.registry.Downloads(ctx, name, rng)
}
