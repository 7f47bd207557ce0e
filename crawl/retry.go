package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/quizgrab"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry attempts to fetch a URL, retrying with the given backoff
// delays (len(delays) retries after the initial attempt). Retries are a
// transport concern; the parser never sees a partially fetched page.
func fetchWithRetry(ctx context.Context, fetcher quizgrab.Fetcher, url string, delays []time.Duration, logger *slog.Logger) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		html, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == len(delays) {
			break
		}

		if logger != nil {
			logger.Debug("retrying fetch",
				"url", url,
				"attempt", attempt+2,
				"err", err,
			)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
	return "", lastErr
}
