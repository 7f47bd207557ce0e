package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/quizgrab/mock"
	quizslog "github.com/fwojciec/quizgrab/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSource_Discover(t *testing.T) {
	t.Parallel()

	t.Run("logs source URL and link count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.QuizSource{
			DiscoverFn: func(ctx context.Context, sourceURL string) ([]string, error) {
				return []string{"https://example.com/t1/", "https://example.com/t2/"}, nil
			},
		}

		src := quizslog.NewLoggingSource(inner, logger)
		links, err := src.Discover(context.Background(), "https://example.com/category/")

		require.NoError(t, err)
		assert.Len(t, links, 2)
		output := buf.String()
		assert.Contains(t, output, "discover")
		assert.Contains(t, output, "source=https://example.com/category/")
		assert.Contains(t, output, "links=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.QuizSource{
			DiscoverFn: func(ctx context.Context, sourceURL string) ([]string, error) {
				return nil, errors.New("category unreachable")
			},
		}

		src := quizslog.NewLoggingSource(inner, logger)
		_, err := src.Discover(context.Background(), "https://example.com/category/")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"category unreachable\"")
	})
}
