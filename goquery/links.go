package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/quizgrab"
)

// quizLinkSelector matches the category listing's post title anchors.
// The class soup is the theme's, not ours.
const quizLinkSelector = "h2.font130.mt0.mb10.mobfont120.lineheight25 a"

// nextPageLabel is the "Next page" pagination link text on the source
// site (Uzbek).
const nextPageLabel = "Keyingi sahifa"

// ExtractQuizLinks returns quiz page URLs from a category listing page.
// Links are returned in document order, deduplicated, with external hosts
// and non-HTTP schemes filtered out.
func ExtractQuizLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, quizgrab.Errorf(quizgrab.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, quizgrab.Errorf(quizgrab.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string
	doc.Find(quizLinkSelector).Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" || isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || !isSameHost(base, resolved) {
			return
		}

		if seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links, nil
}

// HasNextPage reports whether the category page links to a further
// listing page.
func HasNextPage(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}

	found := false
	doc.Find("a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(sel.Text(), nextPageLabel) {
			found = true
			return false
		}
		return true
	})
	return found
}
