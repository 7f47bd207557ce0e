package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/quizgrab"
)

// Ensure SitemapSource implements quizgrab.QuizSource.
var _ quizgrab.QuizSource = (*SitemapSource)(nil)

// SitemapSource discovers quiz page URLs from a site's sitemaps. WordPress
// sites list every post in their sitemap, so a URL filter is normally
// required to narrow the result to quiz pages.
type SitemapSource struct {
	client *http.Client
	filter *quizgrab.URLFilter
}

// NewSitemapSource creates a new SitemapSource with the given HTTP client
// and filter. If client is nil, http.DefaultClient is used. A nil filter
// passes every URL.
func NewSitemapSource(client *http.Client, filter *quizgrab.URLFilter) *SitemapSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapSource{client: client, filter: filter}
}

// Discover finds quiz URLs from the site's sitemaps. It checks robots.txt
// for Sitemap directives, falls back to /sitemap.xml, and resolves sitemap
// indexes recursively. Returns an empty slice (not nil) if no sitemaps are
// found.
func (s *SitemapSource) Discover(ctx context.Context, sourceURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(sourceURL)
	if err != nil {
		return nil, quizgrab.Errorf(quizgrab.EINVALID, "invalid source URL: %v", err)
	}

	// Sitemaps live at the domain root regardless of the source path.
	root := *base
	root.Path = ""

	sitemaps := s.sitemapsFromRobots(ctx, &root)
	if len(sitemaps) == 0 {
		sitemaps = []string{root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()}
	}

	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	urls := []string{}

	var walk func(sitemapURL string) error
	walk = func(sitemapURL string) error {
		if seenSitemaps[sitemapURL] {
			return nil
		}
		seenSitemaps[sitemapURL] = true

		body, err := s.get(ctx, sitemapURL)
		if err != nil {
			// A missing sitemap is not fatal to discovery; context errors are.
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		}

		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(body); err != nil {
			return nil
		}

		root := doc.Root()
		if root == nil {
			return nil
		}

		switch root.Tag {
		case "sitemapindex":
			for _, sm := range root.SelectElements("sitemap") {
				if loc := sm.SelectElement("loc"); loc != nil {
					if err := walk(strings.TrimSpace(loc.Text())); err != nil {
						return err
					}
				}
			}
		case "urlset":
			for _, u := range root.SelectElements("url") {
				loc := u.SelectElement("loc")
				if loc == nil {
					continue
				}
				candidate := strings.TrimSpace(loc.Text())
				if candidate == "" || seenURLs[candidate] {
					continue
				}
				seenURLs[candidate] = true
				if s.filter.Match(candidate) {
					urls = append(urls, candidate)
				}
			}
		}
		return nil
	}

	for _, sm := range sitemaps {
		if err := walk(sm); err != nil {
			return nil, err
		}
	}

	return urls, nil
}

// sitemapsFromRobots returns the Sitemap directives from robots.txt,
// if any.
func (s *SitemapSource) sitemapsFromRobots(ctx context.Context, root *url.URL) []string {
	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil
	}

	var sitemaps []string
	scanner := bufio.NewScanner(strings.NewReader(string(body)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, "Sitemap:"); ok {
			if sm := strings.TrimSpace(rest); sm != "" {
				sitemaps = append(sitemaps, sm)
			}
		}
	}
	return sitemaps
}

func (s *SitemapSource) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	return io.ReadAll(resp.Body)
}
