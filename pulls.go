package pkgview

import (
	"context"

	"github.com/pkgview/pkgview/prs"
)

// PullRequests lists a repository's pull requests, newest first.
func (c *Client) PullRequests(ctx context.Context, owner, repo string, opts ...prs.ListOption) ([]PullRequest, error) {
	return c.github.List(ctx, owner, repo, opts...)
}
