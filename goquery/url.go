package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// resolveURL resolves a possibly relative reference against the page URL.
// Resolution is idempotent for already-absolute URLs. Returns empty string
// if the reference cannot be parsed.
func resolveURL(base *url.URL, ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}

// imageURLs collects every <img> src inside the selection, resolved to an
// absolute URL, in document order.
func imageURLs(base *url.URL, sel *goquery.Selection) []string {
	urls := []string{}
	sel.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || src == "" {
			return
		}
		if resolved := resolveURL(base, src); resolved != "" {
			urls = append(urls, resolved)
		}
	})
	return urls
}

// isSameHost checks if the resolved URL has the same host as the base URL.
// Exact host matching - subdomains are considered different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
