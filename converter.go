package quizgrab

// Converter converts HTML fragments to Markdown.
// Used by the markdown exporter to render question bodies.
type Converter interface {
	Convert(html string) (string, error)
}
