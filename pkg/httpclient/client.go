package httpclient

import (
	"context"
	"net/http"
)

// Profile selects the request headers a Client sends.
type Profile string

const (
	// Browser sends a browser-like User-Agent. Publisher landing pages
	// (IEEE Xplore, ACM DL) refuse Go's default agent.
	Browser Profile = "browser"

	// Plain keeps Go's default headers. arXiv serves PDFs to any agent.
	Plain Profile = "plain"
)

// Client wraps an http.Client and stamps every request with its profile's headers.
type Client struct {
	client  *http.Client
	profile Profile
}

// New creates a Client for the given profile. No timeout is configured;
// callers bound requests through the context.
func New(profile Profile) *Client {
	return NewWithHTTPClient(&http.Client{}, profile)
}

// NewWithHTTPClient is New with a caller-supplied transport, used by tests.
func NewWithHTTPClient(hc *http.Client, profile Profile) *Client {
	return &Client{client: hc, profile: profile}
}

// Do executes an HTTP request with the profile's headers.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	c.setHeaders(req)
	return c.client.Do(req)
}

// Get issues a GET bound to ctx.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

func (c *Client) setHeaders(req *http.Request) {
	switch c.profile {
	case Browser:
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/pdf;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	default:
		// Go's default User-Agent
	}
}
