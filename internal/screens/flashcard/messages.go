package flashcard

// advanceMsg is sent when the post-answer pause ends and the next card (or
// the summary) should be shown.
type advanceMsg struct{}

// hintReadyMsg carries an example sentence lookup result.
type hintReadyMsg struct {
	Word     string
	Sentence string
	Err      error
}
