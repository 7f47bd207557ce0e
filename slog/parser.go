package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/quizgrab"
)

// Ensure LoggingParser implements quizgrab.QuizParser.
var _ quizgrab.QuizParser = (*LoggingParser)(nil)

// LoggingParser wraps a QuizParser with logging.
type LoggingParser struct {
	next   quizgrab.QuizParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next quizgrab.QuizParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse logs the page URL and the number of questions extracted.
func (p *LoggingParser) Parse(pageURL, html string) (test *quizgrab.Test, err error) {
	defer func(begin time.Time) {
		questions := 0
		if test != nil {
			questions = len(test.Questions)
		}
		p.logger.Debug("parse",
			"url", pageURL,
			"questions", questions,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(pageURL, html)
}
