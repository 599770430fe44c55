package mastermind

// Score judges guess against secret. Both codes must have the same length.
//
// Exact matches are taken first and consume their secret position. Every
// remaining guess position, in ascending order, then takes the first
// unconsumed secret position holding the same symbol.
func Score(secret, guess Code) Feedback {
	n := len(secret)
	fb := make(Feedback, n)
	used := make([]bool, n)

	for i := n - 1; i >= 0; i-- {
		if guess[i] == secret[i] {
			fb[i] = ExactMatch
			used[i] = true
		}
	}

	for i := 0; i < n; i++ {
		if fb[i] == ExactMatch {
			continue
		}
		for j := 0; j < n; j++ {
			if !used[j] && secret[j] == guess[i] {
				fb[i] = ColorMatch
				used[j] = true
				break
			}
		}
	}

	return fb
}
