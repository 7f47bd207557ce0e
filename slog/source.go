// Package slog provides logging decorators for quizgrab domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/quizgrab"
)

// Ensure LoggingSource implements quizgrab.QuizSource.
var _ quizgrab.QuizSource = (*LoggingSource)(nil)

// LoggingSource wraps a QuizSource with logging.
type LoggingSource struct {
	next   quizgrab.QuizSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next quizgrab.QuizSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Discover logs the source URL and the number of quiz links found.
func (s *LoggingSource) Discover(ctx context.Context, sourceURL string) (links []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("discover",
			"source", sourceURL,
			"links", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Discover(ctx, sourceURL)
}
