package goquery_test

import (
	"testing"

	"github.com/fwojciec/quizgrab"
	"github.com/fwojciec/quizgrab/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const categoryURL = "https://example.com/category/informatika-2/"

func TestExtractQuizLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts post title links in document order", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<h2 class="font130 mt0 mb10 mobfont120 lineheight25"><a href="/informatika-1/">Informatika 1</a></h2>
<h2 class="font130 mt0 mb10 mobfont120 lineheight25"><a href="https://example.com/informatika-2/">Informatika 2</a></h2>
<h2 class="other"><a href="/not-a-quiz/">skip</a></h2>
</body>`

		links, err := goquery.ExtractQuizLinks(html, categoryURL)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/informatika-1/",
			"https://example.com/informatika-2/",
		}, links)
	})

	t.Run("deduplicates repeated hrefs", func(t *testing.T) {
		t.Parallel()

		html := `
<h2 class="font130 mt0 mb10 mobfont120 lineheight25"><a href="/t1/">A</a></h2>
<h2 class="font130 mt0 mb10 mobfont120 lineheight25"><a href="/t1/">A again</a></h2>`

		links, err := goquery.ExtractQuizLinks(html, categoryURL)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/t1/"}, links)
	})

	t.Run("filters external hosts and non-http schemes", func(t *testing.T) {
		t.Parallel()

		html := `
<h2 class="font130 mt0 mb10 mobfont120 lineheight25"><a href="https://other.com/t/">external</a></h2>
<h2 class="font130 mt0 mb10 mobfont120 lineheight25"><a href="javascript:void(0)">js</a></h2>
<h2 class="font130 mt0 mb10 mobfont120 lineheight25"><a href="/ok/">ok</a></h2>`

		links, err := goquery.ExtractQuizLinks(html, categoryURL)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/ok/"}, links)
	})

	t.Run("invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.ExtractQuizLinks("<html></html>", "://bad")
		assert.Equal(t, quizgrab.EINVALID, quizgrab.ErrorCode(err))
	})
}

func TestHasNextPage(t *testing.T) {
	t.Parallel()

	t.Run("detects the next page link", func(t *testing.T) {
		t.Parallel()

		html := `<nav><a href="/category/informatika-2/page/2/">Keyingi sahifa »</a></nav>`
		assert.True(t, goquery.HasNextPage(html))
	})

	t.Run("absent on the last page", func(t *testing.T) {
		t.Parallel()

		html := `<nav><a href="/category/informatika-2/">« Oldingi sahifa</a></nav>`
		assert.False(t, goquery.HasNextPage(html))
	})
}
