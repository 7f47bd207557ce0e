// Package crawl provides quiz scraping orchestration.
// It coordinates quiz URL discovery, page fetching, extraction, and
// persistence of the resulting tests.
package crawl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fwojciec/quizgrab"
	"golang.org/x/sync/errgroup"
)

// Crawler orchestrates scraping every quiz reachable from a source URL.
// The unit of failure isolation is one quiz page: a page that cannot be
// fetched or parsed is counted as failed without affecting its siblings.
type Crawler struct {
	Source      quizgrab.QuizSource
	Fetcher     quizgrab.Fetcher
	Parser      quizgrab.QuizParser
	Store       quizgrab.TestStore
	Archive     quizgrab.TestService // optional
	Logger      *slog.Logger         // optional
	Limit       int                  // 0 means all discovered quizzes
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Saved     int
	Failed    int
	Questions int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types, in lifecycle order.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single quiz page.
type pageResult struct {
	position int
	url      string
	test     *quizgrab.Test
	err      error
}

// Run discovers quiz pages from sourceURL, scrapes each one, and saves the
// resulting tests to the store in discovery order. The progress callback,
// if provided, receives events as scraping proceeds. The store is not
// committed; that is the caller's decision.
func (c *Crawler) Run(ctx context.Context, sourceURL string, progress ProgressFunc) (*Result, error) {
	urls, err := c.Source.Discover(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("quiz discovery: %w", err)
	}

	if c.Limit > 0 && len(urls) > c.Limit {
		urls = urls[:c.Limit]
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 3
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	resultCh := make(chan pageResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				resultCh <- c.processPage(gctx, i, url, delays)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect out of order, report progress as results arrive.
	results := make([]pageResult, total)
	for res := range resultCh {
		completed.Add(1)
		results[res.position] = res

		if progress != nil {
			typ := ProgressCompleted
			if res.err != nil {
				typ = ProgressFailed
			}
			progress(ProgressEvent{
				Type:      typ,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       res.url,
				Error:     res.err,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Save in discovery order.
	result := &Result{}
	for _, res := range results {
		if res.err != nil {
			result.Failed++
			continue
		}

		if err := c.Store.Save(ctx, res.test); err != nil {
			result.Failed++
			continue
		}

		result.Saved++
		result.Questions += len(res.test.Questions)

		if c.Archive != nil {
			if err := c.archiveTest(ctx, res.test); err != nil && c.Logger != nil {
				c.Logger.Warn("archive failed", "url", res.url, "err", err)
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// processPage fetches and parses one quiz page.
func (c *Crawler) processPage(ctx context.Context, position int, url string, delays []time.Duration) pageResult {
	res := pageResult{position: position, url: url}

	html, err := fetchWithRetry(ctx, c.Fetcher, url, delays, c.Logger)
	if err != nil {
		res.err = fmt.Errorf("fetch %s: %w", url, err)
		return res
	}

	test, err := c.Parser.Parse(url, html)
	if err != nil {
		res.err = fmt.Errorf("parse %s: %w", url, err)
		return res
	}

	res.test = test
	return res
}

// archiveTest records a scraped test in the archive service.
func (c *Crawler) archiveTest(ctx context.Context, test *quizgrab.Test) error {
	content, err := json.Marshal(test)
	if err != nil {
		return err
	}
	return c.Archive.CreateTest(ctx, &quizgrab.TestRecord{
		SourceURL:     test.URL,
		Title:         test.Title,
		QuestionCount: len(test.Questions),
		Content:       string(content),
	})
}
