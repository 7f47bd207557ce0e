// Package rod provides a browser-based implementation of quizgrab.Fetcher.
// Quiz Maker widgets render their question steps with JavaScript, so a
// plain HTTP GET returns an empty quiz container; the browser waits for
// the widget before handing back the DOM.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/quizgrab"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultReadySelector is the element whose presence marks a rendered
// Quiz Maker widget.
const DefaultReadySelector = ".ays-quiz-container"

// DefaultReadyTimeout is how long to wait for the quiz widget to render
// before falling back to the DOM as-is.
const DefaultReadyTimeout = 20 * time.Second

// Ensure Fetcher implements quizgrab.Fetcher at compile time.
var _ quizgrab.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser       *rod.Browser
	launcher      *launcher.Launcher
	readySelector string
	readyTimeout  time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithReadySelector sets the CSS selector the fetcher waits for after the
// page load event. An empty selector disables the wait.
func WithReadySelector(sel string) Option {
	return func(f *Fetcher) {
		f.readySelector = sel
	}
}

// WithReadyTimeout sets how long the fetcher waits for the ready selector
// before returning the DOM as rendered so far.
func WithReadyTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.readyTimeout = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		readySelector: DefaultReadySelector,
		readyTimeout:  DefaultReadyTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("no-sandbox").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL, waits for the quiz widget to render, and
// returns the rendered HTML. A widget that never appears within the ready
// timeout is not an error: the DOM as rendered so far is returned, and the
// parser degrades to a test with zero questions.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	if f.readySelector != "" {
		// Best effort: the quiz container appears once the widget script
		// has built its steps.
		_, _ = page.Timeout(f.readyTimeout).Element(f.readySelector)
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	err := f.browser.Close()
	if f.launcher != nil {
		f.launcher.Kill()
	}
	return err
}
