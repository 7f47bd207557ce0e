package goquery

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"regexp"

	"github.com/fwojciec/quizgrab"
)

// quizConfigRE matches embedded configuration assignments of the form
//
//	window.quizOptions_1851['52455'] = 'czNjcmV0…';
//
// The numeric widget suffix varies per page and is treated as opaque.
// This is a deliberate coupling to the source site's variable naming;
// it is isolated here so a site change touches exactly one function.
var quizConfigRE = regexp.MustCompile(`window\.quizOptions_\d+\s*\[\s*'(\d+)'\s*\]\s*=\s*'([^']+)'`)

// rawConfig is the JSON shape of a decoded configuration payload.
type rawConfig struct {
	QuestionType   string          `json:"question_type"`
	QuestionAnswer json.RawMessage `json:"question_answer"`
}

// DecodeQuizConfigs scans raw HTML text for embedded base64 configuration
// assignments and decodes them into per-question configs keyed by question
// id. An entry that fails to base64-decode or parse as JSON is skipped so a
// truncated config cannot prevent extraction of the other questions. A
// duplicated question id keeps the last assignment. The result may be
// empty; absence of an id is a valid state.
func DecodeQuizConfigs(html string) map[string]*quizgrab.QuestionConfig {
	configs := make(map[string]*quizgrab.QuestionConfig)
	for _, m := range quizConfigRE.FindAllStringSubmatch(html, -1) {
		qid, token := m[1], m[2]

		decoded, err := base64.StdEncoding.DecodeString(token)
		if err != nil {
			continue
		}

		var raw rawConfig
		if err := json.Unmarshal(decoded, &raw); err != nil {
			continue
		}

		configs[qid] = resolveConfig(raw)
	}
	return configs
}

// resolveConfig turns a decoded payload into the tagged union form,
// interpreting the answer value according to the declared type.
func resolveConfig(raw rawConfig) *quizgrab.QuestionConfig {
	cfg := &quizgrab.QuestionConfig{DeclaredType: raw.QuestionType}
	cfg.Type, _ = quizgrab.ParseQuestionType(raw.QuestionType)

	switch cfg.Type {
	case quizgrab.TypeRadio, quizgrab.TypeCheckbox:
		cfg.Correct = decodeStringMap(raw.QuestionAnswer)
	case quizgrab.TypeShortText:
		cfg.Answer = decodeString(raw.QuestionAnswer)
	case quizgrab.TypeMatching:
		cfg.Positions = decodeStringMap(raw.QuestionAnswer)
	case quizgrab.TypeUnknown:
		// No recognizable declared type. If the declared type is empty the
		// block's data-type attribute decides later, so keep the payload
		// under every interpretation it could take.
		m := decodeStringMap(raw.QuestionAnswer)
		cfg.Correct = m
		cfg.Positions = m
		cfg.Answer = decodeString(raw.QuestionAnswer)
	}

	return cfg
}

// decodeStringMap decodes a JSON object into a string-to-string map,
// stringifying scalar values the way the source site mixes them
// ("1", 1, and true all mean a set flag). Returns nil for anything that
// is not an object.
func decodeStringMap(raw json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil
	}

	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = stringifyScalar(v)
	}
	return out
}

// decodeString decodes a JSON string or number into its text form.
// Returns empty string for anything else.
func decodeString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return ""
}

func stringifyScalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		// Nested structures carry no flag meaning.
		return ""
	}
}
