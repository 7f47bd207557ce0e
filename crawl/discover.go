package crawl

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/quizgrab"
	"github.com/fwojciec/quizgrab/bloom"
	"github.com/fwojciec/quizgrab/goquery"
)

// DefaultMaxCategoryPages caps the pagination walk as a runaway guard;
// the walk normally stops at the first page without a next-page link.
const DefaultMaxCategoryPages = 200

// Ensure CategorySource implements quizgrab.QuizSource at compile time.
var _ quizgrab.QuizSource = (*CategorySource)(nil)

// CategorySource discovers quiz page URLs by walking a WordPress category
// listing page by page (/, /page/2/, /page/3/, ...), collecting post title
// links until the listing stops advertising a next page.
type CategorySource struct {
	Fetcher  quizgrab.Fetcher
	Limiter  quizgrab.DomainLimiter
	MaxPages int // 0 means DefaultMaxCategoryPages
}

// Discover implements quizgrab.QuizSource. Links are returned in
// first-seen order without duplicates.
func (s *CategorySource) Discover(ctx context.Context, categoryURL string) ([]string, error) {
	base, err := url.Parse(categoryURL)
	if err != nil {
		return nil, quizgrab.Errorf(quizgrab.EINVALID, "invalid category URL: %v", err)
	}

	maxPages := s.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxCategoryPages
	}

	seen := bloom.NewURLSet(10000, 0.001)
	links := []string{}

	for page := 1; page <= maxPages; page++ {
		pageURL := listingPageURL(categoryURL, page)

		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx, base.Host); err != nil {
				return nil, err
			}
		}

		html, err := s.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			return nil, err
		}

		pageLinks, err := goquery.ExtractQuizLinks(html, pageURL)
		if err != nil {
			return nil, err
		}
		for _, link := range pageLinks {
			if seen.Seen(link) {
				continue
			}
			seen.Add(link)
			links = append(links, link)
		}

		if !goquery.HasNextPage(html) {
			break
		}
	}

	return links, nil
}

// listingPageURL returns the URL of the nth listing page. WordPress
// paginates categories as <category>/page/<n>/.
func listingPageURL(categoryURL string, page int) string {
	if page == 1 {
		return categoryURL
	}
	base := categoryURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + "page/" + strconv.Itoa(page) + "/"
}
