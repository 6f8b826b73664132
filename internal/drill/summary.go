package drill

// Result is the outcome of a finished run.
type Result struct {
	Passed  bool
	Perfect bool
}

// Summary holds the data shown on the completion screen.
type Summary struct {
	Unit      int
	DeckSize  int
	Correct   int
	HelpCount int
	HelpList  []string
	Review    bool
	Result
}

// Missed returns the number of cards that needed help.
func (s *Summary) Missed() int {
	return s.DeckSize - s.Correct
}

// CanReview reports whether there are missed words to review.
func (s *Summary) CanReview() bool {
	return len(s.HelpList) > 0
}

// passThreshold reports whether correct >= 2/3 of total. The comparison is
// done in integers so that, e.g., 10 of 15 passes exactly.
func passThreshold(correct, total int) bool {
	return 3*correct >= 2*total
}
