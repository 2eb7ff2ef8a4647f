// Package scrape holds the HTTP and HTML machinery shared by all extractors.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const maxBodySize = 10 << 20

// ErrNotHTML is returned when a successful response carries a non-HTML body.
var ErrNotHTML = errors.New("response is not html")

type ClientConfig struct {
	Timeout        time.Duration
	UserAgent      string
	Accept         string
	AcceptLanguage string
}

// Client issues browser-like GET requests and parses the HTML response.
type Client struct {
	httpClient *http.Client
	headers    http.Header
}

func NewClient(cfg ClientConfig) *Client {
	headers := make(http.Header)
	if cfg.UserAgent != "" {
		headers.Set("User-Agent", cfg.UserAgent)
	}
	if cfg.Accept != "" {
		headers.Set("Accept", cfg.Accept)
	}
	if cfg.AcceptLanguage != "" {
		headers.Set("Accept-Language", cfg.AcceptLanguage)
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		headers:    headers,
	}
}

// Page is a fetched response. Doc is nil unless the status is 2xx.
type Page struct {
	URL        *url.URL
	StatusCode int
	Doc        *goquery.Document
}

func (p *Page) OK() bool {
	return p.StatusCode >= 200 && p.StatusCode < 300 && p.Doc != nil
}

// Get fetches rawURL. Network failures are returned as errors; non-2xx
// responses are not, callers check Page.OK.
func (c *Client) Get(ctx context.Context, rawURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range c.headers {
		req.Header[k] = v
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	page := &Page{URL: resp.Request.URL, StatusCode: resp.StatusCode}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return page, nil
	}

	if !isHTML(resp.Header.Get("Content-Type")) {
		return page, fmt.Errorf("%w: %s", ErrNotHTML, resp.Header.Get("Content-Type"))
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return page, fmt.Errorf("parse html: %w", err)
	}
	doc.Url = page.URL
	page.Doc = doc

	return page, nil
}

// Probe reports whether rawURL answers with a 2xx status.
func (c *Client) Probe(ctx context.Context, rawURL string) bool {
	page, err := c.Get(ctx, rawURL)
	return err == nil && page.OK()
}

func isHTML(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.Contains(mediaType, "html") || strings.HasSuffix(mediaType, "xml") || mediaType == "text/plain"
}
