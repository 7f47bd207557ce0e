package mock

import "github.com/fwojciec/quizgrab"

var _ quizgrab.QuizParser = (*QuizParser)(nil)

// QuizParser is a mock implementation of quizgrab.QuizParser.
type QuizParser struct {
	ParseFn func(pageURL, html string) (*quizgrab.Test, error)
}

func (p *QuizParser) Parse(pageURL, html string) (*quizgrab.Test, error) {
	return p.ParseFn(pageURL, html)
}
