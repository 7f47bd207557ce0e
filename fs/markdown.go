package fs

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/quizgrab"
)

// MarkdownWriter writes tests as per-test markdown study sheets.
// Question bodies are converted from their source HTML so that images
// and formatting survive; answer options are listed as a task list with
// correct options checked.
type MarkdownWriter struct {
	baseDir string
	conv    quizgrab.Converter
}

// NewMarkdownWriter creates a writer that writes to the given directory.
func NewMarkdownWriter(baseDir string, conv quizgrab.Converter) *MarkdownWriter {
	return &MarkdownWriter{baseDir: baseDir, conv: conv}
}

// WriteTest writes one test as <baseDir>/<slug>.md, where the slug is
// the last path segment of the test URL.
func (w *MarkdownWriter) WriteTest(test *quizgrab.Test) error {
	if err := test.Validate(); err != nil {
		return err
	}

	slug, err := testSlug(test.URL)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	content := w.formatTest(test)
	return os.WriteFile(filepath.Join(w.baseDir, slug+".md"), []byte(content), 0644)
}

// testSlug derives a file name from the last path segment of a test URL.
// Example: https://example.com/informatika-test-1/ → informatika-test-1
func testSlug(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	slug := segments[len(segments)-1]
	if slug == "" {
		slug = "test"
	}
	if strings.Contains(slug, "..") {
		return "", quizgrab.Errorf(quizgrab.EINVALID, "path traversal in URL path: %s", u.Path)
	}
	return slug, nil
}

func (w *MarkdownWriter) formatTest(test *quizgrab.Test) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(test.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(test.Title)
	b.WriteString("\nquestions: ")
	b.WriteString(strconv.Itoa(len(test.Questions)))
	b.WriteString("\ncrawled: ")
	b.WriteString(time.Now().Format("2006-01-02"))
	b.WriteString("\n---\n\n")

	b.WriteString("# ")
	b.WriteString(test.Title)
	b.WriteString("\n")

	for i, q := range test.Questions {
		b.WriteString("\n## ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(w.questionBody(&q))
		b.WriteString("\n")

		for _, opt := range q.Options {
			if opt.IsCorrect {
				b.WriteString("\n- [x] ")
			} else {
				b.WriteString("\n- [ ] ")
			}
			b.WriteString(opt.Text)
		}
		if len(q.Options) > 0 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// questionBody renders a question body as markdown, falling back to the
// plain text when there is no source HTML or conversion fails.
func (w *MarkdownWriter) questionBody(q *quizgrab.Question) string {
	if w.conv == nil || q.HTML == "" {
		return q.Text
	}
	md, err := w.conv.Convert(q.HTML)
	if err != nil || strings.TrimSpace(md) == "" {
		return q.Text
	}
	return strings.TrimSpace(md)
}
