package quizgrab

// QuizParser turns a rendered quiz page into a normalized Test.
//
// Parsing is a pure, synchronous, single-pass transformation: it performs
// no I/O, shares no state between invocations, and may safely run
// concurrently for independent pages. Failure isolation is one question
// block: a malformed block yields a degraded Question, never an error that
// aborts its siblings. A document in which no block can be located yields
// a Test with zero questions.
type QuizParser interface {
	// Parse extracts all questions from the raw HTML of the page at
	// pageURL. The URL is used to resolve relative image sources and as
	// the title fallback.
	Parse(pageURL, html string) (*Test, error)
}
