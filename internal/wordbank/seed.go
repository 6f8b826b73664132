package wordbank

// ExtrasUnitID is the unit shown as "Extras" instead of "Unit 6".
const ExtrasUnitID = 6

// defaultUnits is the built-in sight-word list.
var defaultUnits = []Unit{
	{ID: 1, Words: []string{
		"I", "have", "am", "my", "the", "we", "make",
		"to", "me", "like", "for", "he", "with", "is",
	}},
	{ID: 2, Words: []string{
		"go", "are", "of", "that", "you", "they", "from", "do", "two",
		"four", "three", "five", "here", "yellow", "one", "blue", "what", "green",
	}},
	{ID: 3, Words: []string{
		"come", "play", "how", "down", "away", "give", "funny", "any",
		"was", "were", "her", "said", "some", "little", "where",
	}},
	{ID: 4, Words: []string{
		"find", "over", "again", "pretty", "want", "brown", "open", "good",
		"white", "black", "every", "please", "all", "could", "now",
	}},
	{ID: 5, Words: []string{
		"saw", "our", "eat", "soon", "walk", "into", "too", "then",
		"out", "new", "there", "when", "who", "be", "so",
	}},
	{ID: ExtrasUnitID, Label: "Extras", Words: []string{
		"God", "Jesus", "red", "orange", "purple", "gray", "pink", "blue", "yellow",
		"six", "ten", "five", "eight", "three", "seven", "nine", "four",
	}},
}

// Default returns the built-in word bank.
func Default() *Bank {
	b, err := New(defaultUnits)
	if err != nil {
		panic("wordbank: invalid built-in units: " + err.Error())
	}
	return b
}
