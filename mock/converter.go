package mock

import "github.com/fwojciec/quizgrab"

var _ quizgrab.Converter = (*Converter)(nil)

// Converter is a mock implementation of quizgrab.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
