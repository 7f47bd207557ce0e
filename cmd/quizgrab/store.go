package main

import (
	"context"
	"log/slog"

	"github.com/fwojciec/quizgrab"
	"github.com/fwojciec/quizgrab/fs"
)

// Ensure markdownStore implements quizgrab.TestStore at compile time.
var _ quizgrab.TestStore = (*markdownStore)(nil)

// markdownStore decorates a TestStore so that every saved test also gets
// a markdown study sheet. The sheet write is best-effort; a conversion
// failure never loses the JSON output.
type markdownStore struct {
	next   quizgrab.TestStore
	writer *fs.MarkdownWriter
	logger *slog.Logger
}

func newMarkdownStore(next quizgrab.TestStore, writer *fs.MarkdownWriter, logger *slog.Logger) *markdownStore {
	return &markdownStore{next: next, writer: writer, logger: logger}
}

func (s *markdownStore) Save(ctx context.Context, test *quizgrab.Test) error {
	if err := s.next.Save(ctx, test); err != nil {
		return err
	}
	if err := s.writer.WriteTest(test); err != nil && s.logger != nil {
		s.logger.Warn("markdown export failed", "url", test.URL, "err", err)
	}
	return nil
}

func (s *markdownStore) Commit() error {
	return s.next.Commit()
}

func (s *markdownStore) Abort() error {
	return s.next.Abort()
}
