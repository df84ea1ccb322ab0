// Package clipper fetches a web page and strips it down to readable text so
// the extraction prompt stays small.
package clipper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Clipper fetches and cleans page content for recipe extraction.
type Clipper struct {
	client *http.Client
}

// New creates a Clipper with a bounded request timeout.
func New() *Clipper {
	return &Clipper{client: &http.Client{Timeout: 15 * time.Second}}
}

// IsURL reports whether the source string looks like a fetchable http(s) URL.
func IsURL(source string) bool {
	source = strings.TrimSpace(source)
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return false
	}
	u, err := url.Parse(source)
	return err == nil && u.Host != ""
}

// FetchText retrieves the page and returns its visible body text with
// scripts, styles, and navigation chrome removed.
func (c *Clipper) FetchText(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", pageURL, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch %s: status %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", pageURL, err)
	}

	// Remove noise to save LLM tokens.
	doc.Find("script, style, nav, footer, iframe, .ads, #ads").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	text := strings.TrimSpace(doc.Find("body").Text())
	if text == "" {
		return "", fmt.Errorf("no readable text at %s", pageURL)
	}
	return text, nil
}
