package main

import (
	"context"
	"io"

	"github.com/fwojciec/quizgrab"
	"github.com/fwojciec/quizgrab/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Source  quizgrab.QuizSource
	Store   quizgrab.TestStore
	Crawler *crawl.Crawler
}

// FetchCmd handles the main scrape operation.
type FetchCmd struct {
	URL     string
	Preview bool
}
