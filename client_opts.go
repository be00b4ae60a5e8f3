package pkgview

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pkgview/pkgview/prs"
	"github.com/pkgview/pkgview/registry"
	"github.com/pkgview/pkgview/registry/cache"
)

// Option configures a Client.
type Option func(*Client) error

// WithRegistryURL points the client at an npm-compatible registry other
// than registry.npmjs.org.
func WithRegistryURL(base string) Option {
	return func(c *Client) error {
		c.registryOpts = append(c.registryOpts, registry.WithRegistryURL(base))
		return nil
	}
}

// WithDownloadsURL sets the downloads analytics API base URL.
func WithDownloadsURL(base string) Option {
	return func(c *Client) error {
		c.registryOpts = append(c.registryOpts, registry.WithDownloadsURL(base))
		return nil
	}
}

// WithHTTPClient sets the HTTP client used for registry and GitHub
// requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) error {
		c.registryOpts = append(c.registryOpts, registry.WithHTTPClient(client))
		c.githubOpts = append(c.githubOpts, prs.WithHTTPClient(client))
		return nil
	}
}

// WithUserAgent sets the User-Agent header on registry requests.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.registryOpts = append(c.registryOpts, registry.WithUserAgent(ua))
		return nil
	}
}

// WithGitHubToken authenticates GitHub requests with an access token.
// Without a token, anonymous access is used.
func WithGitHubToken(token string) Option {
	return func(c *Client) error {
		c.githubOpts = append(c.githubOpts, prs.WithToken(token))
		return nil
	}
}

// WithGitHubBaseURL points GitHub requests at an Enterprise or test
// endpoint.
func WithGitHubBaseURL(base string) Option {
	return func(c *Client) error {
		c.githubOpts = append(c.githubOpts, prs.WithBaseURL(base))
		return nil
	}
}

// WithRegistryClient supplies a fully constructed registry client,
// overriding the registry options.
func WithRegistryClient(client *registry.Client) Option {
	return func(c *Client) error {
		c.registry = client
		return nil
	}
}

// WithPullRequestClient supplies a fully constructed pull request client,
// overriding the GitHub options.
func WithPullRequestClient(client *prs.Client) Option {
	return func(c *Client) error {
		c.github = client
		return nil
	}
}

// WithCaching installs in-memory caches: packuments with the given TTL
// and tarball bytes with the default byte budget.
func WithCaching(ttl time.Duration) Option {
	return func(c *Client) error {
		c.packuments = cache.NewMemoryPackumentCache(ttl)
		c.tarballs = cache.NewMemoryTarballCache(0)
		return nil
	}
}

// WithPackumentCache sets the packument cache implementation.
func WithPackumentCache(pc cache.PackumentCache) Option {
	return func(c *Client) error {
		c.packuments = pc
		return nil
	}
}

// WithTarballCache sets the tarball cache implementation.
func WithTarballCache(tc cache.TarballCache) Option {
	return func(c *Client) error {
		c.tarballs = tc
		return nil
	}
}

// WithLogger sets a logger for the client.
// The logger is propagated to the underlying registry and GitHub clients.
// If nil, a discard logger is used (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}
