package quizgrab_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/quizgrab"
	"github.com/stretchr/testify/assert"
)

func TestURLFilter_Match(t *testing.T) {
	t.Parallel()

	t.Run("nil filter passes everything", func(t *testing.T) {
		t.Parallel()

		var f *quizgrab.URLFilter
		assert.True(t, f.Match("https://example.com/anything"))
	})

	t.Run("include patterns", func(t *testing.T) {
		t.Parallel()

		f := &quizgrab.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/test-`)},
		}
		assert.True(t, f.Match("https://example.com/test-42/"))
		assert.False(t, f.Match("https://example.com/about/"))
	})

	t.Run("exclude applied after include", func(t *testing.T) {
		t.Parallel()

		f := &quizgrab.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/test-`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`draft`)},
		}
		assert.True(t, f.Match("https://example.com/test-42/"))
		assert.False(t, f.Match("https://example.com/test-draft/"))
	})
}
