package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/quizgrab"
	"github.com/fwojciec/quizgrab/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestService_CreateTest(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, hash, and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTestService(db)
		ctx := context.Background()

		rec := &quizgrab.TestRecord{
			SourceURL:     "https://example.com/informatika-test-1/",
			Title:         "Informatika test 1",
			QuestionCount: 25,
			Content:       `{"title":"Informatika test 1"}`,
		}

		err := svc.CreateTest(ctx, rec)
		require.NoError(t, err)

		assert.NotEmpty(t, rec.ID, "ID should be generated")
		assert.NotEmpty(t, rec.ContentHash, "ContentHash should be generated")
		assert.False(t, rec.FetchedAt.IsZero(), "FetchedAt should be set")
	})

	t.Run("identical content hashes identically across runs", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTestService(db)
		ctx := context.Background()

		a := &quizgrab.TestRecord{SourceURL: "https://example.com/t/", Content: `{"q":1}`}
		b := &quizgrab.TestRecord{SourceURL: "https://example.com/t/", Content: `{"q":1}`}
		c := &quizgrab.TestRecord{SourceURL: "https://example.com/t/", Content: `{"q":2}`}

		require.NoError(t, svc.CreateTest(ctx, a))
		require.NoError(t, svc.CreateTest(ctx, b))
		require.NoError(t, svc.CreateTest(ctx, c))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ContentHash, c.ContentHash)
	})

	t.Run("returns error for invalid record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTestService(db)

		err := svc.CreateTest(context.Background(), &quizgrab.TestRecord{})
		require.Error(t, err)
		assert.Equal(t, quizgrab.EINVALID, quizgrab.ErrorCode(err))
	})
}

func TestTestService_FindTestByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTestService(db)
		ctx := context.Background()

		rec := &quizgrab.TestRecord{
			SourceURL:     "https://example.com/informatika-test-1/",
			Title:         "Informatika test 1",
			QuestionCount: 25,
			Content:       `{"title":"Informatika test 1"}`,
		}
		require.NoError(t, svc.CreateTest(ctx, rec))

		found, err := svc.FindTestByID(ctx, rec.ID)
		require.NoError(t, err)

		assert.Equal(t, rec.ID, found.ID)
		assert.Equal(t, rec.SourceURL, found.SourceURL)
		assert.Equal(t, rec.Title, found.Title)
		assert.Equal(t, rec.QuestionCount, found.QuestionCount)
		assert.Equal(t, rec.Content, found.Content)
		assert.Equal(t, rec.ContentHash, found.ContentHash)
	})

	t.Run("returns ENOTFOUND for missing record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTestService(db)

		_, err := svc.FindTestByID(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.Equal(t, quizgrab.ENOTFOUND, quizgrab.ErrorCode(err))
	})
}

func TestTestService_FindTests(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc *sqlite.TestService, n int) []*quizgrab.TestRecord {
		t.Helper()
		recs := make([]*quizgrab.TestRecord, n)
		for i := range recs {
			recs[i] = &quizgrab.TestRecord{
				SourceURL: fmt.Sprintf("https://example.com/t%d/", i),
				Title:     fmt.Sprintf("Test %d", i),
				Content:   fmt.Sprintf(`{"n":%d}`, i),
			}
			require.NoError(t, svc.CreateTest(context.Background(), recs[i]))
		}
		return recs
	}

	t.Run("returns all records without filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTestService(db)
		seed(t, svc, 3)

		recs, err := svc.FindTests(context.Background(), quizgrab.TestFilter{})
		require.NoError(t, err)
		assert.Len(t, recs, 3)
	})

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTestService(db)
		seed(t, svc, 3)

		url := "https://example.com/t1/"
		recs, err := svc.FindTests(context.Background(), quizgrab.TestFilter{SourceURL: &url})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "Test 1", recs[0].Title)
	})

	t.Run("filters by ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTestService(db)
		seeded := seed(t, svc, 3)

		recs, err := svc.FindTests(context.Background(), quizgrab.TestFilter{ID: &seeded[2].ID})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, seeded[2].SourceURL, recs[0].SourceURL)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTestService(db)
		seed(t, svc, 5)

		recs, err := svc.FindTests(context.Background(), quizgrab.TestFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, recs, 2)
	})
}

func TestTestService_DeleteTest(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTestService(db)
		ctx := context.Background()

		rec := &quizgrab.TestRecord{SourceURL: "https://example.com/t/", Content: "{}"}
		require.NoError(t, svc.CreateTest(ctx, rec))

		require.NoError(t, svc.DeleteTest(ctx, rec.ID))

		_, err := svc.FindTestByID(ctx, rec.ID)
		assert.Equal(t, quizgrab.ENOTFOUND, quizgrab.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTestService(db)

		err := svc.DeleteTest(context.Background(), "no-such-id")
		assert.Equal(t, quizgrab.ENOTFOUND, quizgrab.ErrorCode(err))
	})
}
