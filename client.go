package pkgview

import (
	"io"
	"log/slog"

	"github.com/pkgview/pkgview/prs"
	"github.com/pkgview/pkgview/registry"
	"github.com/pkgview/pkgview/registry/cache"
)

// Client provides high-level operations over npm packages: fetching and
// extracting tarballs, comparing versions, download analytics, and
// repository pull requests.
//
// Clients are safe for concurrent use; every operation allocates its own
// working state and the caches are concurrency-safe.
type Client struct {
	// registryOpts are options for the underlying registry client.
	registryOpts []registry.Option

	// githubOpts are options for the underlying pull request client.
	githubOpts []prs.Option

	// Caches
	packuments cache.PackumentCache
	tarballs   cache.TarballCache

	registry *registry.Client
	github   *prs.Client
	logger   *slog.Logger
}

// NewClient creates a client with the given options.
//
// Without options the client talks to the public npm registry and uses
// anonymous GitHub access. No caching is performed unless configured via
// [WithCaching], [WithPackumentCache], or [WithTarballCache].
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.registry == nil {
		regOpts := c.registryOpts
		if c.logger != nil {
			regOpts = append(regOpts, registry.WithLogger(c.logger))
		}
		c.registry = registry.New(regOpts...)
	}
	if c.github == nil {
		ghOpts := c.githubOpts
		if c.logger != nil {
			ghOpts = append(ghOpts, prs.WithLogger(c.logger))
		}
		gh, err := prs.New(ghOpts...)
		if err != nil {
			return nil, err
		}
		c.github = gh
	}
	return c, nil
}

// log returns the logger, falling back to a discard logger if nil.
func (c *Client) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.logger
}
