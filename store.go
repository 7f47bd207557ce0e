package quizgrab

import (
	"context"
	"time"
)

// TestStore persists extracted tests with atomic semantics.
// Save accumulates tests in a pending state; Commit makes the output
// permanent; Abort discards pending output.
type TestStore interface {
	Save(ctx context.Context, test *Test) error
	Commit() error
	Abort() error
}

// TestService represents an archive of scraped tests, used to track
// results and content changes across runs.
type TestService interface {
	// CreateTest records a test.
	CreateTest(ctx context.Context, rec *TestRecord) error

	// FindTestByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindTestByID(ctx context.Context, id string) (*TestRecord, error)

	// FindTests retrieves records matching the filter.
	FindTests(ctx context.Context, filter TestFilter) ([]*TestRecord, error)

	// DeleteTest permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteTest(ctx context.Context, id string) error
}

// TestRecord is an archived test: the serialized Test plus bookkeeping
// fields assigned by the archive.
type TestRecord struct {
	ID            string    `json:"id"`
	SourceURL     string    `json:"sourceUrl"`
	Title         string    `json:"title"`
	QuestionCount int       `json:"questionCount"`
	Content       string    `json:"content"`
	ContentHash   string    `json:"contentHash"`
	FetchedAt     time.Time `json:"fetchedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *TestRecord) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "test record source URL required")
	}
	return nil
}

// TestFilter represents a filter for FindTests.
type TestFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
