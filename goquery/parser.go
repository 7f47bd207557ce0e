// Package goquery implements quiz extraction from rendered HTML using
// PuerkitoBio/goquery. It reconciles two loosely-linked data sources
// embedded in one document: the visible question markup and the
// base64-encoded configuration payload carrying correctness data.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/quizgrab"
)

// Quiz Maker selectors. One question's markup region is a "step" carrying
// the question id attribute; sub-regions are optional and yield empty
// results when absent.
const (
	questionBlockSelector = "div.step[data-question-id]"
	questionBodySelector  = ".ays_quiz_question"
)

// Ensure Parser implements quizgrab.QuizParser at compile time.
var _ quizgrab.QuizParser = (*Parser)(nil)

// Parser extracts Quiz Maker questions from rendered quiz pages.
// Parser is stateless and safe for concurrent use.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse implements quizgrab.QuizParser. A document in which no question
// block can be located yields a Test with zero questions rather than an
// error; the caller decides whether an empty Test is acceptable.
func (p *Parser) Parse(pageURL, html string) (*quizgrab.Test, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, quizgrab.Errorf(quizgrab.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &quizgrab.Test{Title: pageURL, URL: pageURL, Questions: []quizgrab.Question{}}, nil
	}

	title := pageURL
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		if t := collapseText(h1); t != "" {
			title = t
		}
	}

	configs := DecodeQuizConfigs(html)

	questions := make([]quizgrab.Question, 0)
	doc.Find(questionBlockSelector).Each(func(_ int, step *goquery.Selection) {
		questions = append(questions, parseQuestion(base, step, configs))
	})

	return &quizgrab.Test{Title: title, URL: pageURL, Questions: questions}, nil
}

// parseQuestion folds one question block and its configuration entry into
// a Question. It never fails: missing sub-regions degrade to empty text,
// images, or options.
func parseQuestion(base *url.URL, step *goquery.Selection, configs map[string]*quizgrab.QuestionConfig) quizgrab.Question {
	qid, _ := step.Attr("data-question-id")
	cfg := configs[qid]
	attrType, _ := step.Attr("data-type")
	typ := quizgrab.EffectiveType(cfg, attrType)

	var text, bodyHTML string
	images := []string{}
	if body := step.Find(questionBodySelector).First(); body.Length() > 0 {
		text = collapseText(body)
		bodyHTML, _ = body.Html()
		images = imageURLs(base, body)
	}

	var options []quizgrab.AnswerOption
	switch typ {
	case quizgrab.TypeRadio, quizgrab.TypeCheckbox:
		options = choiceOptions(base, step, cfg)
	case quizgrab.TypeShortText:
		options = shortTextOption(cfg)
	case quizgrab.TypeMatching:
		options = matchingOptions(base, step, cfg)
	case quizgrab.TypeUnknown:
		// Types outside the four are not extracted into options; the
		// question text and images are still captured.
	}

	return quizgrab.NewQuestion(text, bodyHTML, images, options)
}
