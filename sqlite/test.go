package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/quizgrab"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ quizgrab.TestService = (*TestService)(nil)

// TestService implements quizgrab.TestService using SQLite.
type TestService struct {
	db *DB
}

// NewTestService creates a new TestService.
func NewTestService(db *DB) *TestService {
	return &TestService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateTest records a scraped test. The ID, content hash, and fetch
// timestamp are assigned here, not by the caller.
func (s *TestService) CreateTest(ctx context.Context, rec *quizgrab.TestRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.FetchedAt = time.Now().UTC()
	rec.ContentHash = hashContent(rec.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tests (id, source_url, title, question_count, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.SourceURL, rec.Title, rec.QuestionCount, rec.Content, rec.ContentHash,
		rec.FetchedAt.Format(time.RFC3339))

	return err
}

// FindTestByID retrieves a record by ID.
func (s *TestService) FindTestByID(ctx context.Context, id string) (*quizgrab.TestRecord, error) {
	var rec quizgrab.TestRecord
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, question_count, content, content_hash, fetched_at
		FROM tests
		WHERE id = ?
	`, id).Scan(&rec.ID, &rec.SourceURL, &rec.Title, &rec.QuestionCount,
		&rec.Content, &rec.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, quizgrab.Errorf(quizgrab.ENOTFOUND, "test record not found")
	}
	if err != nil {
		return nil, err
	}

	if rec.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}

	return &rec, nil
}

// FindTests retrieves records matching the filter, newest first.
func (s *TestService) FindTests(ctx context.Context, filter quizgrab.TestFilter) ([]*quizgrab.TestRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, question_count, content, content_hash, fetched_at FROM tests WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*quizgrab.TestRecord
	for rows.Next() {
		var rec quizgrab.TestRecord
		var fetchedAt string

		if err := rows.Scan(&rec.ID, &rec.SourceURL, &rec.Title, &rec.QuestionCount,
			&rec.Content, &rec.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		if rec.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}

// DeleteTest permanently removes a record.
func (s *TestService) DeleteTest(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tests WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return quizgrab.Errorf(quizgrab.ENOTFOUND, "test record not found")
	}

	return nil
}
