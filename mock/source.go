package mock

import (
	"context"

	"github.com/fwojciec/quizgrab"
)

var _ quizgrab.QuizSource = (*QuizSource)(nil)

// QuizSource is a mock implementation of quizgrab.QuizSource.
type QuizSource struct {
	DiscoverFn func(ctx context.Context, sourceURL string) ([]string, error)
}

func (s *QuizSource) Discover(ctx context.Context, sourceURL string) ([]string, error) {
	return s.DiscoverFn(ctx, sourceURL)
}
