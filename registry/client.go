package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Default endpoints for the public npm registry and its downloads API.
const (
	DefaultRegistryURL  = "https://registry.npmjs.org"
	DefaultDownloadsURL = "https://api.npmjs.org"
)

// Client talks to an npm-compatible registry and the downloads API.
//
// The zero options produce a client against the public npm registry using
// http.DefaultClient. Clients are safe for concurrent use.
type Client struct {
	registryURL  string
	downloadsURL string
	httpClient   *http.Client
	userAgent    string
	logger       *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithRegistryURL sets the registry base URL (no trailing slash required).
func WithRegistryURL(base string) Option {
	return func(c *Client) {
		c.registryURL = strings.TrimSuffix(base, "/")
	}
}

// WithDownloadsURL sets the downloads API base URL.
func WithDownloadsURL(base string) Option {
	return func(c *Client) {
		c.downloadsURL = strings.TrimSuffix(base, "/")
	}
}

// WithHTTPClient sets the HTTP client used for all requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithUserAgent sets the User-Agent header sent on each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets a logger for the client.
// If nil, a discard logger is used (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a registry client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		registryURL:  DefaultRegistryURL,
		downloadsURL: DefaultDownloadsURL,
		httpClient:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	return c
}

// log returns the logger, falling back to a discard logger if nil.
func (c *Client) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.logger
}

// Packument fetches the registry's full document for a package.
// Returns [ErrNotFound] for unpublished names.
func (c *Client) Packument(ctx context.Context, name string) (*Packument, error) {
	c.log().Debug("fetching packument", "package", name)

	var doc Packument
	u := c.registryURL + "/" + url.PathEscape(name)
	if err := c.getJSON(ctx, u, name, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Resolve fetches the packument for spec.Name and picks the version
// matching spec.Range. Specs carrying a direct URL have nothing to
// resolve and are rejected with [ErrInvalidSpec].
func (c *Client) Resolve(ctx context.Context, spec Spec) (*Version, error) {
	if spec.URL != "" {
		return nil, fmt.Errorf("%w: direct URL %q needs no resolution", ErrInvalidSpec, spec.URL)
	}
	doc, err := c.Packument(ctx, spec.Name)
	if err != nil {
		return nil, err
	}
	v, err := doc.Resolve(spec.Range)
	if err != nil {
		return nil, err
	}
	c.log().Debug("resolved specifier", "spec", spec.String(), "version", v.Version)
	return v, nil
}

// Tarball downloads the compressed tarball at the given URL.
func (c *Client) Tarball(ctx context.Context, tarballURL string) ([]byte, error) {
	c.log().Debug("downloading tarball", "url", tarballURL)

	resp, err := c.get(ctx, tarballURL, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return io.ReadAll(resp.Body)
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, tarballURL)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
}

// getJSON fetches u and decodes the body into out. name is used for
// not-found error context.
func (c *Client) getJSON(ctx context.Context, u, name string, out any) error {
	resp, err := c.get(ctx, u, "application/json")
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		// decode below
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	default:
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", u, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, u, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return c.httpClient.Do(req)
}
