// Package htmltomarkdown converts question body HTML to markdown for
// the study sheet export.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/quizgrab"
)

// Ensure Converter implements quizgrab.Converter at compile time.
var _ quizgrab.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown. Question bodies keep their inline
// images and tables; quiz chrome (inputs, buttons) has no markdown
// rendering and drops out.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", quizgrab.Errorf(quizgrab.EINVALID, "empty HTML input")
	}
	return c.conv.ConvertString(html)
}
