// Package fetch retrieves source content: web pages as markdown, RSS/Atom
// feeds, social posts, and search results. Every URL it returns is already
// sanitized to its canonical, tracking-free form.
package fetch

import (
	"context"
	"time"
)

// Page is one fetched web page.
type Page struct {
	URL      string
	Markdown string
	RawHTML  string
	Title    string
}

// FeedItem is one entry of a parsed feed.
type FeedItem struct {
	Title     string
	Link      string
	Content   string
	Published *time.Time
}

// Post is one social post from a platform provider.
type Post struct {
	ID       string
	Platform string
	Author   string
	Text     string
	URL      string
	PostedAt *time.Time
}

// SearchResult is one web search hit.
type SearchResult struct {
	Title   string
	URL     string
	Snippet string
}

// Fetcher is the retrieval surface the scrape phase consumes. Implementations
// own timeouts, retries, and rate limiting; callers only see retriable
// errors.
type Fetcher interface {
	Page(ctx context.Context, url string) (*Page, error)
	Feed(ctx context.Context, url string) ([]FeedItem, error)
	Posts(ctx context.Context, platform, identifier string, limit int) ([]Post, error)
	Search(ctx context.Context, query string) ([]SearchResult, error)
	SearchTopics(ctx context.Context, platform string, topics []string, limit int) ([]Post, error)
	SiteSearch(ctx context.Context, query string, max int) ([]SearchResult, error)
}
