package mock

import (
	"context"

	"github.com/fwojciec/quizgrab"
)

var _ quizgrab.TestStore = (*TestStore)(nil)

// TestStore is a mock implementation of quizgrab.TestStore.
type TestStore struct {
	SaveFn   func(ctx context.Context, test *quizgrab.Test) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *TestStore) Save(ctx context.Context, test *quizgrab.Test) error {
	return s.SaveFn(ctx, test)
}

func (s *TestStore) Commit() error {
	if s.CommitFn == nil {
		return nil
	}
	return s.CommitFn()
}

func (s *TestStore) Abort() error {
	if s.AbortFn == nil {
		return nil
	}
	return s.AbortFn()
}
