package mock

import (
	"context"

	"github.com/fwojciec/quizgrab"
)

var _ quizgrab.TestService = (*TestService)(nil)

// TestService is a mock implementation of quizgrab.TestService.
type TestService struct {
	CreateTestFn   func(ctx context.Context, rec *quizgrab.TestRecord) error
	FindTestByIDFn func(ctx context.Context, id string) (*quizgrab.TestRecord, error)
	FindTestsFn    func(ctx context.Context, filter quizgrab.TestFilter) ([]*quizgrab.TestRecord, error)
	DeleteTestFn   func(ctx context.Context, id string) error
}

func (s *TestService) CreateTest(ctx context.Context, rec *quizgrab.TestRecord) error {
	return s.CreateTestFn(ctx, rec)
}

func (s *TestService) FindTestByID(ctx context.Context, id string) (*quizgrab.TestRecord, error) {
	return s.FindTestByIDFn(ctx, id)
}

func (s *TestService) FindTests(ctx context.Context, filter quizgrab.TestFilter) ([]*quizgrab.TestRecord, error) {
	return s.FindTestsFn(ctx, filter)
}

func (s *TestService) DeleteTest(ctx context.Context, id string) error {
	return s.DeleteTestFn(ctx, id)
}
