package quizgrab

// AnswerOption represents one selectable (or matchable) answer within a
// question. Values are built once during extraction and never mutated.
//
// Field names in the serialized form are fixed: the JSON output is consumed
// by tooling written against the original scraper's shape.
type AnswerOption struct {
	Text      string   `json:"text"`
	IsCorrect bool     `json:"is_correct"`
	Images    []string `json:"images"`
}

// Question represents one extracted quiz question.
//
// Variants is a positional projection of Options[].Text kept as a
// convenience for consumers. CorrectAnswer holds the 0-based indices of the
// correct options in increasing order; for single-answer question types it
// has at most one element. Images are absolute URLs attached to the
// question body.
type Question struct {
	Text          string         `json:"text"`
	Options       []AnswerOption `json:"options"`
	Variants      []string       `json:"variants"`
	CorrectAnswer []int          `json:"correct_answer"`
	Images        []string       `json:"images"`

	// HTML is the question body's source markup, retained for markdown
	// export. It is not part of the persisted JSON shape.
	HTML string `json:"-"`
}

// NewQuestion assembles a Question from its extracted parts, deriving
// Variants and CorrectAnswer from the options.
func NewQuestion(text, html string, images []string, options []AnswerOption) Question {
	if images == nil {
		images = []string{}
	}
	if options == nil {
		options = []AnswerOption{}
	}
	variants := make([]string, len(options))
	correct := make([]int, 0)
	for i, opt := range options {
		variants[i] = opt.Text
		if opt.IsCorrect {
			correct = append(correct, i)
		}
	}
	return Question{
		Text:          text,
		Options:       options,
		Variants:      variants,
		CorrectAnswer: correct,
		Images:        images,
		HTML:          html,
	}
}

// Test represents one quiz page: its title, source URL, and questions in
// document order.
type Test struct {
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	Questions []Question `json:"questions"`
}

// Validate returns an error if the test contains invalid fields.
func (t *Test) Validate() error {
	if t.URL == "" {
		return Errorf(EINVALID, "test URL required")
	}
	return nil
}
