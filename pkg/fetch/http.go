package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"
)

// maxBodyBytes caps how much of any response body is read. Pages beyond
// this are truncated, not failed.
const maxBodyBytes = 2 << 20

// fetchRetries is how many times a transport error is retried before it
// surfaces to the scrape phase.
const fetchRetries = 2

// Config holds the HTTP fetcher's knobs.
type Config struct {
	Timeout        time.Duration
	RatePerSec     float64
	UserAgent      string
	SearchEndpoint string
	SocialEndpoint string
	SearchAPIKey   string
	SocialAPIKey   string
}

// HTTPFetcher implements Fetcher over plain HTTP: pages are converted to
// markdown, feeds parsed with gofeed, search and social posts fetched from
// the configured provider endpoints.
type HTTPFetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	parser  *gofeed.Parser
	cfg     Config
}

// NewHTTPFetcher creates a fetcher with the given configuration.
func NewHTTPFetcher(cfg Config) *HTTPFetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RatePerSec == 0 {
		cfg.RatePerSec = 4
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "rootsignal/1.0 (+https://github.com/fourthplaces/rootsignal)"
	}
	return &HTTPFetcher{
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1),
		parser:  gofeed.NewParser(),
		cfg:     cfg,
	}
}

// Page fetches a URL and converts its HTML to markdown.
func (f *HTTPFetcher) Page(ctx context.Context, rawURL string) (*Page, error) {
	body, err := f.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	html := string(body)
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s to markdown: %w", rawURL, err)
	}

	title := ""
	if doc, derr := goquery.NewDocumentFromReader(strings.NewReader(html)); derr == nil {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	return &Page{
		URL:      SanitizeURL(rawURL),
		Markdown: markdown,
		RawHTML:  html,
		Title:    title,
	}, nil
}

// Feed fetches and parses an RSS/Atom feed.
func (f *HTTPFetcher) Feed(ctx context.Context, rawURL string) ([]FeedItem, error) {
	body, err := f.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	parsed, err := f.parser.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", rawURL, err)
	}

	items := make([]FeedItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		content := it.Content
		if content == "" {
			content = it.Description
		}
		items = append(items, FeedItem{
			Title:     it.Title,
			Link:      SanitizeURL(it.Link),
			Content:   content,
			Published: it.PublishedParsed,
		})
	}
	return items, nil
}

// Posts fetches recent posts for a social account through the social
// provider endpoint.
func (f *HTTPFetcher) Posts(ctx context.Context, platform, identifier string, limit int) ([]Post, error) {
	if f.cfg.SocialEndpoint == "" {
		return nil, fmt.Errorf("no social provider configured")
	}
	endpoint := fmt.Sprintf("%s/posts?platform=%s&account=%s&limit=%d",
		strings.TrimSuffix(f.cfg.SocialEndpoint, "/"),
		url.QueryEscape(platform), url.QueryEscape(identifier), limit)
	return f.fetchPosts(ctx, endpoint, platform)
}

// SearchTopics fetches posts matching topics on a platform.
func (f *HTTPFetcher) SearchTopics(ctx context.Context, platform string, topics []string, limit int) ([]Post, error) {
	if f.cfg.SocialEndpoint == "" {
		return nil, fmt.Errorf("no social provider configured")
	}
	endpoint := fmt.Sprintf("%s/topics?platform=%s&q=%s&limit=%d",
		strings.TrimSuffix(f.cfg.SocialEndpoint, "/"),
		url.QueryEscape(platform), url.QueryEscape(strings.Join(topics, ",")), limit)
	return f.fetchPosts(ctx, endpoint, platform)
}

// socialPost mirrors the provider's wire format.
type socialPost struct {
	ID       string     `json:"id"`
	Author   string     `json:"author"`
	Text     string     `json:"text"`
	URL      string     `json:"url"`
	PostedAt *time.Time `json:"posted_at"`
}

func (f *HTTPFetcher) fetchPosts(ctx context.Context, endpoint, platform string) ([]Post, error) {
	body, err := f.getAuthed(ctx, endpoint, f.cfg.SocialAPIKey)
	if err != nil {
		return nil, err
	}

	var raw []socialPost
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode social posts: %w", err)
	}

	posts := make([]Post, 0, len(raw))
	for _, p := range raw {
		posts = append(posts, Post{
			ID:       p.ID,
			Platform: platform,
			Author:   p.Author,
			Text:     p.Text,
			URL:      SanitizeURL(p.URL),
			PostedAt: p.PostedAt,
		})
	}
	return posts, nil
}

// searchHit mirrors the SearXNG-compatible search provider's wire format.
type searchHit struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

type searchResponse struct {
	Results []searchHit `json:"results"`
}

// Search runs a web search query against the search provider.
func (f *HTTPFetcher) Search(ctx context.Context, query string) ([]SearchResult, error) {
	return f.search(ctx, query, 0)
}

// SiteSearch runs a capped search, used for topic discovery probes.
func (f *HTTPFetcher) SiteSearch(ctx context.Context, query string, max int) ([]SearchResult, error) {
	return f.search(ctx, query, max)
}

func (f *HTTPFetcher) search(ctx context.Context, query string, max int) ([]SearchResult, error) {
	if f.cfg.SearchEndpoint == "" {
		return nil, fmt.Errorf("no search provider configured")
	}
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json",
		strings.TrimSuffix(f.cfg.SearchEndpoint, "/"), url.QueryEscape(query))

	body, err := f.getAuthed(ctx, endpoint, f.cfg.SearchAPIKey)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}

	results := make([]SearchResult, 0, len(resp.Results))
	for _, hit := range resp.Results {
		results = append(results, SearchResult{
			Title:   hit.Title,
			URL:     SanitizeURL(hit.URL),
			Snippet: hit.Content,
		})
		if max > 0 && len(results) >= max {
			break
		}
	}
	return results, nil
}

func (f *HTTPFetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	return f.getAuthed(ctx, rawURL, "")
}

// getAuthed performs a rate-limited GET with bounded retries on transport
// errors and 5xx responses.
func (f *HTTPFetcher) getAuthed(ctx context.Context, rawURL, apiKey string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to build request for %s: %w", rawURL, err))
		}
		req.Header.Set("User-Agent", f.cfg.UserAgent)
		if apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+apiKey)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to fetch %s: %w", rawURL, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode))
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", rawURL, err)
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), fetchRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return body, nil
}
