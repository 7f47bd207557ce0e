package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/quizgrab"
)

// choiceOptions extracts radio/checkbox answers in DOM order. An answer
// field without its input control is skipped; a field without a label
// yields an option with empty text.
//
// Correctness comes from the configuration's answer-id keyed map: a mapped
// value of "1" or "true" (case-insensitive) marks the option correct. With
// no map present, no option is marked correct — the page has no judged
// answer for that question (e.g. unscored formats), which is a valid state.
func choiceOptions(base *url.URL, step *goquery.Selection, cfg *quizgrab.QuestionConfig) []quizgrab.AnswerOption {
	var correct map[string]string
	if cfg != nil {
		correct = cfg.Correct
	}

	var options []quizgrab.AnswerOption
	step.Find(".ays-quiz-answers .ays-field").Each(func(_ int, field *goquery.Selection) {
		input := field.Find("input[id^='ays-answer-']").First()
		if input.Length() == 0 {
			return
		}

		answerID, _ := input.Attr("value")
		inputID, _ := input.Attr("id")

		var text string
		images := []string{}
		if label := field.Find("label[for='" + inputID + "']").First(); label.Length() > 0 {
			// Only the option's own text counts; nested labels hold image
			// captions.
			text = ownText(label)
			images = imageURLs(base, label)
		}

		isCorrect := false
		if len(correct) > 0 {
			val, ok := correct[answerID]
			if !ok {
				val = "0"
			}
			val = strings.ToLower(val)
			isCorrect = val == "1" || val == "true"
		}

		options = append(options, quizgrab.AnswerOption{
			Text:      text,
			IsCorrect: isCorrect,
			Images:    images,
		})
	})
	return options
}

// shortTextOption turns the configured answer string into the sole,
// correct option. An absent or empty answer yields zero options.
func shortTextOption(cfg *quizgrab.QuestionConfig) []quizgrab.AnswerOption {
	if cfg == nil || cfg.Answer == "" {
		return nil
	}
	return []quizgrab.AnswerOption{{
		Text:      cfg.Answer,
		IsCorrect: true,
		Images:    []string{},
	}}
}

// matchingOptions extracts matching pairs in DOM order. The configuration
// maps position to answer id; the inverse map recovers each pair's
// position from the right-hand element's answer id. Option text is
// "<choice> -> <position>" when the position is known, else the bare
// choice text.
//
// Every matching option is marked correct: pairs are intended
// associations, not judged right/wrong alternatives.
func matchingOptions(base *url.URL, step *goquery.Selection, cfg *quizgrab.QuestionConfig) []quizgrab.AnswerOption {
	positionOf := make(map[string]string)
	if cfg != nil {
		for pos, answerID := range cfg.Positions {
			positionOf[answerID] = pos
		}
	}

	var options []quizgrab.AnswerOption
	step.Find(".ays-matching-field .ays-matching-field-option").Each(func(_ int, pair *goquery.Selection) {
		choice := pair.Find(".ays-matching-field-choice").First()
		match := pair.Find(".ays-matching-field-match").First()
		if choice.Length() == 0 || match.Length() == 0 {
			return
		}

		text := collapseText(choice)
		images := imageURLs(base, choice)

		answerID, _ := match.Attr("data-answer-id")
		if pos, ok := positionOf[answerID]; ok {
			text = text + " -> " + pos
		}

		options = append(options, quizgrab.AnswerOption{
			Text:      text,
			IsCorrect: true,
			Images:    images,
		})
	})
	return options
}
