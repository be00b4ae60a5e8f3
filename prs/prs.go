// Package prs lists repository pull requests for the dashboard's PR views.
//
// It wraps the GitHub REST API and reduces each pull request to the fields
// the dashboard renders. Anonymous access works for public repositories
// within GitHub's unauthenticated rate limits; pass a token via [WithToken]
// for private repositories or heavier use.
package prs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v32/github"
	"golang.org/x/oauth2"
)

// PullRequest is the subset of pull request data the dashboard renders.
type PullRequest struct {
	Number    int
	Title     string
	Author    string
	BaseRef   string
	HeadRef   string
	URL       string
	Draft     bool
	CreatedAt time.Time
}

// Client lists pull requests for GitHub repositories.
type Client struct {
	httpClient *http.Client
	token      string
	baseURL    string
	logger     *slog.Logger

	gh *github.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken authenticates requests with a GitHub access token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient sets the HTTP client used for requests. Ignored when a
// token is set, since the oauth2 transport supplies its own client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithBaseURL points the client at a GitHub Enterprise or test API
// endpoint.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithLogger sets a logger for the client.
// If nil, a discard logger is used (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a pull request client with the given options.
func New(opts ...Option) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	httpClient := c.httpClient
	if c.token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	c.gh = github.NewClient(httpClient)

	if c.baseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(c.baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse base URL: %w", err)
		}
		c.gh.BaseURL = base
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

// ListOption configures a List call.
type ListOption func(*listConfig)

type listConfig struct {
	state string
	base  string
}

// ListWithState filters by PR state: "open" (default), "closed", or "all".
func ListWithState(state string) ListOption {
	return func(cfg *listConfig) {
		cfg.state = state
	}
}

// ListWithBase filters pull requests by base branch.
func ListWithBase(base string) ListOption {
	return func(cfg *listConfig) {
		cfg.base = base
	}
}

// List returns the repository's pull requests, newest first, following
// pagination until the API is exhausted.
func (c *Client) List(ctx context.Context, owner, repo string, opts ...ListOption) ([]PullRequest, error) {
	cfg := listConfig{state: "open"}
	for _, opt := range opts {
		opt(&cfg)
	}

	c.log().Debug("listing pull requests", "owner", owner, "repo", repo, "state", cfg.state)

	ghOpts := &github.PullRequestListOptions{
		State:       cfg.state,
		Base:        cfg.base,
		Sort:        "created",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var pulls []PullRequest
	for {
		page, resp, err := c.gh.PullRequests.List(ctx, owner, repo, ghOpts)
		if err != nil {
			return nil, fmt.Errorf("list pull requests %s/%s: %w", owner, repo, err)
		}
		for _, pr := range page {
			pulls = append(pulls, PullRequest{
				Number:    pr.GetNumber(),
				Title:     pr.GetTitle(),
				Author:    pr.GetUser().GetLogin(),
				BaseRef:   pr.GetBase().GetRef(),
				HeadRef:   pr.GetHead().GetRef(),
				URL:       pr.GetHTMLURL(),
				Draft:     pr.GetDraft(),
				CreatedAt: pr.GetCreatedAt(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		ghOpts.Page = resp.NextPage
	}
	return pulls, nil
}
