package main

import (
	"fmt"
	"net/url"

	"github.com/fwojciec/quizgrab"
	"github.com/fwojciec/quizgrab/crawl"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	if c.Preview {
		return c.runPreview(deps)
	}
	return c.runFetch(deps)
}

// runPreview lists discovered quiz URLs without fetching quiz pages.
func (c *FetchCmd) runPreview(deps *Dependencies) error {
	urls, err := deps.Source.Discover(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quizgrab.ErrorMessage(err))
		return err
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}

	return nil
}

func (c *FetchCmd) runFetch(deps *Dependencies) error {
	progress := func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d quizzes\n", e.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", e.URL, e.Error)
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", e.Completed, e.Total, truncateURL(e.URL, 40))
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", e.Completed, e.Total, truncateURL(e.URL, 40))
		case crawl.ProgressFinished:
			fmt.Fprintf(deps.Stdout, "\r%80s\r", "")
		}
	}

	result, err := deps.Crawler.Run(deps.Ctx, c.URL, progress)
	if err != nil {
		_ = deps.Store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", quizgrab.ErrorMessage(err))
		return err
	}

	if result.Saved == 0 {
		_ = deps.Store.Abort()
		fmt.Fprintln(deps.Stdout, "No tests saved")
		return nil
	}

	if err := deps.Store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error committing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d tests (%d questions, %d failed)\n",
		result.Saved, result.Questions, result.Failed)
	return nil
}

// truncateURL shortens a URL for display by showing only the path.
func truncateURL(rawURL string, maxLen int) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		if len(rawURL) <= maxLen {
			return rawURL
		}
		return rawURL[:maxLen-3] + "..."
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}

	if len(path) <= maxLen {
		return path
	}

	// Truncate from the left to show the unique suffix.
	return "..." + path[len(path)-maxLen+3:]
}
