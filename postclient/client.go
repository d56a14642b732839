// Package postclient is an HTTP client for the posts API. It implements the
// related resolvers' PostStore so related-content resolution can run against
// a remote deployment, with an optional TTL response cache keyed by request
// parameters.
package postclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bazarche/bazarche-backend/models"
)

// Client is a posts API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *responseCache
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithCache enables response caching with the given staleness window.
func WithCache(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newResponseCache(ttl)
	}
}

// NewClient creates a new posts API client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// postListResponse mirrors the posts listing endpoint's response body
type postListResponse struct {
	Posts []models.BlogPost `json:"posts"`
	Total int               `json:"total"`
}

// ListPosts performs a raw posts listing request with the given parameters
// and returns the page of posts plus the total match count.
func (c *Client) ListPosts(ctx context.Context, params url.Values) ([]models.BlogPost, int, error) {
	key := params.Encode()
	if c.cache != nil {
		if posts, total, ok := c.cache.get(key); ok {
			return posts, total, nil
		}
	}

	reqURL := c.baseURL + "/posts"
	if key != "" {
		reqURL += "?" + key
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, 0, fmt.Errorf("list posts: unexpected status %d", resp.StatusCode)
	}

	var list postListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, 0, fmt.Errorf("decode response: %w", err)
	}

	if c.cache != nil {
		c.cache.put(key, list.Posts, list.Total)
	}
	return list.Posts, list.Total, nil
}

// InvalidateCache drops every cached response so the next read is fresh.
func (c *Client) InvalidateCache() {
	if c.cache != nil {
		c.cache.invalidate()
	}
}

// PostsByCategory returns published posts in the category, newest first.
func (c *Client) PostsByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]models.BlogPost, error) {
	params := url.Values{}
	params.Set("categoryId", categoryID.String())
	params.Set("status", models.PostStatusPublished)
	params.Set("limit", strconv.Itoa(limit))
	posts, _, err := c.ListPosts(ctx, params)
	return posts, err
}

// PostsByTag returns published posts carrying the tag, newest first.
func (c *Client) PostsByTag(ctx context.Context, tag string, limit int) ([]models.BlogPost, error) {
	params := url.Values{}
	params.Set("tag", tag)
	params.Set("status", models.PostStatusPublished)
	params.Set("limit", strconv.Itoa(limit))
	posts, _, err := c.ListPosts(ctx, params)
	return posts, err
}

// PostsOnOrBefore returns published posts with publishedAt <= t, newest first.
func (c *Client) PostsOnOrBefore(ctx context.Context, t time.Time, limit int) ([]models.BlogPost, error) {
	params := url.Values{}
	params.Set("status", models.PostStatusPublished)
	params.Set("endDate", t.UTC().Format(time.RFC3339))
	params.Set("sortBy", "publishedAt")
	params.Set("sortOrder", "desc")
	params.Set("limit", strconv.Itoa(limit))
	posts, _, err := c.ListPosts(ctx, params)
	return posts, err
}

// PostsOnOrAfter returns published posts with publishedAt >= t, oldest first.
func (c *Client) PostsOnOrAfter(ctx context.Context, t time.Time, limit int) ([]models.BlogPost, error) {
	params := url.Values{}
	params.Set("status", models.PostStatusPublished)
	params.Set("startDate", t.UTC().Format(time.RFC3339))
	params.Set("sortBy", "publishedAt")
	params.Set("sortOrder", "asc")
	params.Set("limit", strconv.Itoa(limit))
	posts, _, err := c.ListPosts(ctx, params)
	return posts, err
}
