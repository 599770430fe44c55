package mastermind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counts(fb Feedback) [3]int {
	e, c, n := fb.Counts()
	return [3]int{e, c, n}
}

func TestScore_AllMatch(t *testing.T) {
	fb := Score(Code{0, 0, 1, 1}, Code{0, 0, 1, 1})
	assert.Equal(t, [3]int{4, 0, 0}, counts(fb))
	assert.True(t, fb.Solved())
}

func TestScore_NoMatch(t *testing.T) {
	fb := Score(Code{0, 0, 0, 0}, Code{1, 1, 1, 1})
	assert.Equal(t, Feedback{NoMatch, NoMatch, NoMatch, NoMatch}, fb)
}

func TestScore_Cases(t *testing.T) {
	const a, b, c = 0, 1, 2

	cases := []struct {
		name   string
		secret Code
		guess  Code
		want   [3]int
	}{
		{name: "duplicates in guess", secret: Code{a, b, b, c}, guess: Code{b, b, a, a}, want: [3]int{1, 2, 1}},
		{name: "repeats 0011 vs 0101", secret: Code{0, 0, 1, 1}, guess: Code{0, 1, 0, 1}, want: [3]int{2, 2, 0}},
		{name: "repeats as multiset", secret: Code{1, 1, 2, 2}, guess: Code{2, 2, 1, 1}, want: [3]int{0, 4, 0}},
		{name: "one color many times", secret: Code{5, 4, 3, 2}, guess: Code{1, 1, 1, 1}, want: [3]int{0, 0, 4}},
		{name: "one exact two color", secret: Code{5, 4, 3, 2}, guess: Code{1, 2, 3, 4}, want: [3]int{1, 2, 1}},
		{name: "reversed", secret: Code{5, 4, 3, 2}, guess: Code{4, 3, 2, 1}, want: [3]int{0, 3, 1}},
		{name: "three exact", secret: Code{5, 4, 3, 2}, guess: Code{5, 4, 3, 1}, want: [3]int{3, 0, 1}},
		{name: "exact wins over color for same symbol", secret: Code{1, 2, 2, 2}, guess: Code{2, 1, 1, 1}, want: [3]int{0, 2, 2}},
		{name: "single peg", secret: Code{3}, guess: Code{3}, want: [3]int{1, 0, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fb := Score(tc.secret, tc.guess)
			require.Len(t, fb, len(tc.guess))
			assert.Equal(t, tc.want, counts(fb))
		})
	}
}

func TestScore_Positional(t *testing.T) {
	fb := Score(Code{0, 1, 1, 2}, Code{1, 1, 0, 0})
	assert.Equal(t, Feedback{ColorMatch, ExactMatch, ColorMatch, NoMatch}, fb)
}

// Exhaustive over length 3, alphabet 4: exact+color always equals the
// multiset intersection size and exact pegs sit where symbols agree.
func TestScore_SymbolConservation(t *testing.T) {
	const length, alphabet = 3, 4
	all := allCodes(length, alphabet)

	for _, secret := range all {
		for _, guess := range all {
			fb := Score(secret, guess)
			exact, color, none := fb.Counts()

			require.Equal(t, overlap(secret, guess, alphabet), exact+color, "secret=%v guess=%v", secret, guess)
			require.Equal(t, length, exact+color+none)
			for i := range guess {
				require.Equal(t, guess[i] == secret[i], fb[i] == ExactMatch, "secret=%v guess=%v pos=%d", secret, guess, i)
			}
		}
	}
}

func allCodes(length, alphabet int) []Code {
	out := []Code{{}}
	for i := 0; i < length; i++ {
		var next []Code
		for _, c := range out {
			for s := 0; s < alphabet; s++ {
				next = append(next, append(c.clone(), Symbol(s)))
			}
		}
		out = next
	}
	return out
}

func overlap(x, y Code, alphabet int) int {
	fx := make([]int, alphabet)
	fy := make([]int, alphabet)
	for i := range x {
		fx[x[i]]++
		fy[y[i]]++
	}
	total := 0
	for v := range fx {
		total += min(fx[v], fy[v])
	}
	return total
}

func TestFeedback_Sorted(t *testing.T) {
	fb := Feedback{NoMatch, ColorMatch, ExactMatch, ColorMatch}
	assert.Equal(t, Feedback{ExactMatch, ColorMatch, ColorMatch, NoMatch}, fb.Sorted())
	assert.Equal(t, Feedback{NoMatch, ColorMatch, ExactMatch, ColorMatch}, fb, "Sorted must not reorder the receiver")
}

func TestFeedback_SolvedEmpty(t *testing.T) {
	assert.False(t, Feedback{}.Solved())
}
