package goquery_test

import (
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/fwojciec/quizgrab"
	"github.com/fwojciec/quizgrab/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeConfig(jsonPayload string) string {
	return base64.StdEncoding.EncodeToString([]byte(jsonPayload))
}

func configScript(widgetID int, qid, token string) string {
	return fmt.Sprintf("window.quizOptions_%d['%s'] = '%s';", widgetID, qid, token)
}

func TestDecodeQuizConfigs(t *testing.T) {
	t.Parallel()

	t.Run("decodes radio correctness map", func(t *testing.T) {
		t.Parallel()

		html := `<script>` +
			configScript(1851, "52455", encodeConfig(`{"question_type":"radio","question_answer":{"1":"0","2":"1","3":"0"}}`)) +
			`</script>`

		configs := goquery.DecodeQuizConfigs(html)

		require.Len(t, configs, 1)
		cfg := configs["52455"]
		require.NotNil(t, cfg)
		assert.Equal(t, quizgrab.TypeRadio, cfg.Type)
		assert.Equal(t, "radio", cfg.DeclaredType)
		assert.Equal(t, map[string]string{"1": "0", "2": "1", "3": "0"}, cfg.Correct)
	})

	t.Run("decodes short_text answer", func(t *testing.T) {
		t.Parallel()

		html := configScript(7, "100", encodeConfig(`{"question_type":"short_text","question_answer":"Tashkent"}`))

		configs := goquery.DecodeQuizConfigs(html)

		require.NotNil(t, configs["100"])
		assert.Equal(t, quizgrab.TypeShortText, configs["100"].Type)
		assert.Equal(t, "Tashkent", configs["100"].Answer)
	})

	t.Run("decodes matching position map", func(t *testing.T) {
		t.Parallel()

		html := configScript(7, "200", encodeConfig(`{"question_type":"matching","question_answer":{"1":"a7","2":"b3"}}`))

		configs := goquery.DecodeQuizConfigs(html)

		require.NotNil(t, configs["200"])
		assert.Equal(t, quizgrab.TypeMatching, configs["200"].Type)
		assert.Equal(t, map[string]string{"1": "a7", "2": "b3"}, configs["200"].Positions)
	})

	t.Run("stringifies numeric and boolean flags", func(t *testing.T) {
		t.Parallel()

		html := configScript(7, "300", encodeConfig(`{"question_type":"checkbox","question_answer":{"1":1,"2":true,"3":"0"}}`))

		configs := goquery.DecodeQuizConfigs(html)

		require.NotNil(t, configs["300"])
		assert.Equal(t, map[string]string{"1": "1", "2": "true", "3": "0"}, configs["300"].Correct)
	})

	t.Run("skips invalid base64 without aborting the page", func(t *testing.T) {
		t.Parallel()

		html := configScript(7, "1", "!!!not-base64!!!") + "\n" +
			configScript(7, "2", encodeConfig(`{"question_type":"radio","question_answer":{"9":"1"}}`))

		configs := goquery.DecodeQuizConfigs(html)

		assert.NotContains(t, configs, "1")
		assert.Contains(t, configs, "2")
	})

	t.Run("skips tokens that decode to invalid JSON", func(t *testing.T) {
		t.Parallel()

		html := configScript(7, "1", encodeConfig(`{"question_type": truncated`))

		configs := goquery.DecodeQuizConfigs(html)

		assert.Empty(t, configs)
	})

	t.Run("last assignment wins for a duplicated question id", func(t *testing.T) {
		t.Parallel()

		html := configScript(7, "1", encodeConfig(`{"question_type":"radio","question_answer":{"5":"0"}}`)) + "\n" +
			configScript(7, "1", encodeConfig(`{"question_type":"radio","question_answer":{"5":"1"}}`))

		configs := goquery.DecodeQuizConfigs(html)

		require.NotNil(t, configs["1"])
		assert.Equal(t, map[string]string{"5": "1"}, configs["1"].Correct)
	})

	t.Run("matches any widget namespace suffix", func(t *testing.T) {
		t.Parallel()

		html := configScript(1851, "1", encodeConfig(`{"question_type":"radio","question_answer":{}}`)) + "\n" +
			configScript(90210, "2", encodeConfig(`{"question_type":"checkbox","question_answer":{}}`))

		configs := goquery.DecodeQuizConfigs(html)

		assert.Len(t, configs, 2)
	})

	t.Run("payload without declared type keeps every interpretation", func(t *testing.T) {
		t.Parallel()

		html := configScript(7, "1", encodeConfig(`{"question_answer":{"4":"1"}}`))

		configs := goquery.DecodeQuizConfigs(html)

		cfg := configs["1"]
		require.NotNil(t, cfg)
		assert.Equal(t, quizgrab.TypeUnknown, cfg.Type)
		assert.Empty(t, cfg.DeclaredType)
		assert.Equal(t, map[string]string{"4": "1"}, cfg.Correct)
		assert.Equal(t, map[string]string{"4": "1"}, cfg.Positions)
	})

	t.Run("empty page yields empty map", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, goquery.DecodeQuizConfigs("<html><body>no quiz here</body></html>"))
	})
}
