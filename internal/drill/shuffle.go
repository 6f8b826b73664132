package drill

import "math/rand/v2"

// shuffle permutes words in place with Fisher–Yates: for i from the last
// index down to 1, swap words[i] with words[j] for j uniform in [0, i].
func shuffle(rng *rand.Rand, words []string) {
	for i := len(words) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		words[i], words[j] = words[j], words[i]
	}
}
