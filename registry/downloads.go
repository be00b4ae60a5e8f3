package registry

import (
	"context"
	"net/url"
)

// Common ranges accepted by the downloads API. Explicit "YYYY-MM-DD:YYYY-MM-DD"
// spans work as well.
const (
	RangeLastDay   = "last-day"
	RangeLastWeek  = "last-week"
	RangeLastMonth = "last-month"
	RangeLastYear  = "last-year"
)

// DownloadRange is a daily download-count series for one package.
type DownloadRange struct {
	Package   string        `json:"package"`
	Start     string        `json:"start"`
	End       string        `json:"end"`
	Downloads []DownloadDay `json:"downloads"`
}

// DownloadDay is the download count for a single day.
type DownloadDay struct {
	Day       string `json:"day"`
	Downloads int64  `json:"downloads"`
}

// Total sums the daily counts over the range.
func (r *DownloadRange) Total() int64 {
	var total int64
	for _, d := range r.Downloads {
		total += d.Downloads
	}
	return total
}

// Downloads fetches daily download counts for a package over rng, e.g.
// [RangeLastMonth] or "2024-01-01:2024-01-31". Scoped packages are
// supported; the registry reports no per-day data for them before 2017.
func (c *Client) Downloads(ctx context.Context, name, rng string) (*DownloadRange, error) {
	if rng == "" {
		rng = RangeLastMonth
	}
	c.log().Debug("fetching downloads", "package", name, "range", rng)

	// Scoped names keep their / in downloads API paths.
	u := c.downloadsURL + "/downloads/range/" + url.PathEscape(rng) + "/" + name
	var doc DownloadRange
	if err := c.getJSON(ctx, u, name, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
