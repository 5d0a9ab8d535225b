package blog

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const postsPath = "/wp-json/wp/v2/posts"

// Client fetches posts. Every failure is logged and yields an empty result;
// callers never see an error.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache
	logger  zerolog.Logger
}

// NewClient creates a client for a WordPress base URL. cache may be nil.
func NewClient(baseURL string, hc *http.Client, cache *Cache) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		cache:   cache,
		logger:  log.With().Str("component", "blog").Logger(),
	}
}

// Configured reports whether a base URL is set
func (c *Client) Configured() bool { return c.baseURL != "" }

// Posts returns the latest posts, or an empty list
func (c *Client) Posts(ctx context.Context) []Post {
	q := url.Values{}
	q.Set("_embed", "")
	return c.list(ctx, q)
}

// PostBySlug returns the post with the given slug
func (c *Client) PostBySlug(ctx context.Context, slug string) (Post, bool) {
	if slug == "" {
		return Post{}, false
	}
	q := url.Values{}
	q.Set("slug", slug)
	q.Set("_embed", "")
	posts := c.list(ctx, q)
	if len(posts) == 0 {
		return Post{}, false
	}
	return posts[0], true
}

// Similar returns up to n other posts, excluding excludeID
func (c *Client) Similar(ctx context.Context, excludeID, n int) []Post {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(n))
	q.Set("exclude", strconv.Itoa(excludeID))
	q.Set("_embed", "")
	return c.list(ctx, q)
}

func (c *Client) list(ctx context.Context, q url.Values) []Post {
	if c.baseURL == "" {
		c.logger.Warn().Msg("WORDPRESS_API_URL is not defined, returning empty posts")
		return []Post{}
	}
	u := c.baseURL + postsPath + "?" + encodeQuery(q)

	if c.cache != nil {
		if v, ok := c.cache.Get(u); ok {
			return v.([]Post)
		}
	}

	posts, err := c.fetch(ctx, u)
	if err != nil {
		c.logger.Error().Err(err).Str("url", u).Msg("fetching posts failed")
		return []Post{}
	}
	if c.cache != nil {
		c.cache.Put(u, posts)
	}
	return posts
}

func (c *Client) fetch(ctx context.Context, u string) ([]Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get posts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get posts: status %d", resp.StatusCode)
	}
	var posts []Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	if posts == nil {
		posts = []Post{}
	}
	return posts, nil
}

// encodeQuery keeps bare flags such as _embed without a trailing "="
func encodeQuery(q url.Values) string {
	parts := make([]string, 0, len(q))
	for _, k := range slices.Sorted(maps.Keys(q)) {
		v := q.Get(k)
		if v == "" {
			parts = append(parts, url.QueryEscape(k))
			continue
		}
		parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(v))
	}
	return strings.Join(parts, "&")
}
