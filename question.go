package quizgrab

// QuestionType identifies a quiz question kind for extraction dispatch.
type QuestionType int

// Supported question types. TypeUnknown covers types the extractor does
// not handle; their questions are still captured, with zero options.
const (
	TypeUnknown QuestionType = iota
	TypeRadio
	TypeCheckbox
	TypeShortText
	TypeMatching
)

// String returns the wire name of the question type as it appears in the
// configuration payload and the data-type attribute.
func (t QuestionType) String() string {
	switch t {
	case TypeRadio:
		return "radio"
	case TypeCheckbox:
		return "checkbox"
	case TypeShortText:
		return "short_text"
	case TypeMatching:
		return "matching"
	default:
		return "unknown"
	}
}

// ParseQuestionType maps a wire name to a QuestionType.
// The bool result is false if the name is empty or not recognized.
func ParseQuestionType(s string) (QuestionType, bool) {
	switch s {
	case "radio":
		return TypeRadio, true
	case "checkbox":
		return TypeCheckbox, true
	case "short_text":
		return TypeShortText, true
	case "matching":
		return TypeMatching, true
	default:
		return TypeUnknown, false
	}
}

// QuestionConfig is the decoded per-question configuration payload.
// It is a tagged union: Type selects which of the answer fields is
// populated. Configs are looked up by question id, never mutated, and
// discarded once the question they inform is built.
type QuestionConfig struct {
	// Type is the parsed declared type; TypeUnknown if the payload
	// declared nothing recognizable.
	Type QuestionType

	// DeclaredType is the raw question_type string from the payload.
	// An empty value falls through to the block's data-type attribute
	// during type resolution; a non-empty unrecognized value does not.
	DeclaredType string

	// Correct maps answer id to a correctness flag ("1"/"true" variants)
	// for radio and checkbox questions. A present but all-falsy map means
	// the question is unscored, which is a valid state.
	Correct map[string]string

	// Answer is the expected answer for short_text questions.
	Answer string

	// Positions maps position label to answer id for matching questions.
	Positions map[string]string
}

// EffectiveType resolves the type used for extraction dispatch:
// the configuration's declared type if present, else the block's own
// data-type attribute, else radio.
func EffectiveType(cfg *QuestionConfig, attr string) QuestionType {
	if cfg != nil && cfg.DeclaredType != "" {
		return cfg.Type
	}
	if attr != "" {
		t, _ := ParseQuestionType(attr)
		return t
	}
	return TypeRadio
}
