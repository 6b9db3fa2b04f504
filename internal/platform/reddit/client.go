package reddit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/postcraft-api/internal/config"
)

// Response is an upstream reply. The caller must close Body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}

// Client fetches listing JSON from reddit.
type Client struct {
	baseURL      string
	userAgent    string
	defaultLimit int
	maxLimit     int
	httpClient   *http.Client
}

// NewClient creates a Client from cfg. A nil httpClient gets a 30 second timeout.
func NewClient(cfg config.RedditConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:    cfg.UserAgent,
		defaultLimit: cfg.DefaultLimit,
		maxLimit:     cfg.MaxLimit,
		httpClient:   httpClient,
	}
}

// Fetch requests the resource q describes. Redirects are followed.
// Non-2xx upstream replies are returned as a Response, not an error.
func (c *Client) Fetch(ctx context.Context, q Query) (*Response, error) {
	target, err := c.TargetURL(q)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       resp.Body,
	}, nil
}

// TargetURL builds the upstream URL for q.
func (c *Client) TargetURL(q Query) (string, error) {
	var path string
	switch q.Mode {
	case ModeList:
		if q.Sub == "" {
			return "", ErrMissingSub
		}
		path = "/r/" + url.PathEscape(q.Sub) + "/hot.json"
	case ModeComments:
		if !strings.HasPrefix(q.Permalink, "/") {
			return "", ErrInvalidPermalink
		}
		path = strings.TrimRight(q.Permalink, "/") + ".json"
	default:
		return "", ErrInvalidMode
	}

	params := "limit=" + strconv.Itoa(c.limit(q.Limit)) + "&raw_json=1&api_type=json"
	target := c.baseURL + path + "?" + params
	if _, err := url.Parse(target); err != nil {
		return "", fmt.Errorf("invalid upstream url: %w", err)
	}
	return target, nil
}

func (c *Client) limit(requested int) int {
	n := requested
	if n <= 0 {
		n = c.defaultLimit
	}
	if c.maxLimit > 0 && n > c.maxLimit {
		n = c.maxLimit
	}
	return n
}
