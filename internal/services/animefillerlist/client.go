package animefillerlist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"fillercount/internal/services"
)

const (
	defaultBaseURL     = "https://www.animefillerlist.com/shows"
	defaultUserAgent   = "fillercount/dev"
	defaultHTTPTimeout = 30 * time.Second
)

// Config describes the client configuration.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// Client fetches show pages.
type Client struct {
	baseURL   *url.URL
	userAgent string
	http      *http.Client
}

// NotFoundError reports that the site had no page for a show.
type NotFoundError struct {
	Show       string
	URL        string
	StatusCode int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("animefillerlist: show %q not found (%s returned %d)", e.Show, e.URL, e.StatusCode)
}

func (e *NotFoundError) Unwrap() error { return services.ErrNotFound }

// New creates a Client from the supplied configuration.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("animefillerlist: parse base url: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("animefillerlist: base url %q must be absolute", base)
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      client,
	}, nil
}

// ShowURL returns the page URL for a show slug.
func (c *Client) ShowURL(show string) string {
	return c.baseURL.JoinPath(show).String()
}

// FetchPage downloads and parses the page for show.
func (c *Client) FetchPage(ctx context.Context, show string) (*Page, error) {
	if c == nil {
		return nil, errors.New("animefillerlist: client is nil")
	}
	show = strings.TrimSpace(show)
	if show == "" {
		return nil, services.Wrap(services.ErrArgument, "", "fetch page", "show name is empty", nil)
	}
	pageURL := c.ShowURL(show)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("animefillerlist: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, services.Wrap(services.ErrFetch, show, "fetch page", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, &NotFoundError{Show: show, URL: pageURL, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, services.Wrap(services.ErrFetch, show, "parse page", pageURL, err)
	}
	return &Page{Show: show, URL: pageURL, doc: doc}, nil
}
