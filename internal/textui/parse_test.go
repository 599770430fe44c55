package textui

import (
	"testing"

	"example.com/mastermind/internal/mastermind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		in       string
		alphabet int
		want     mastermind.Code
		err      error
	}{
		{name: "digits", in: "0123", alphabet: 6, want: mastermind.Code{0, 1, 2, 3}},
		{name: "separators", in: "0 1,2-3", alphabet: 6, want: mastermind.Code{0, 1, 2, 3}},
		{name: "letters", in: "aZ9", alphabet: 36, want: mastermind.Code{10, 35, 9}},
		{name: "repeats", in: "5555", alphabet: 6, want: mastermind.Code{5, 5, 5, 5}},
		{name: "out of alphabet", in: "0126", alphabet: 6, err: mastermind.ErrInvalidSymbol},
		{name: "unknown char", in: "01?2", alphabet: 6, err: mastermind.ErrInvalidSymbol},
		{name: "empty", in: "", alphabet: 6, want: nil},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCode(tc.in, tc.alphabet)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSymbolRange(t *testing.T) {
	assert.Equal(t, "0", SymbolRange(1))
	assert.Equal(t, "0-5", SymbolRange(6))
	assert.Equal(t, "0-b", SymbolRange(12))
	assert.Equal(t, "0-z", SymbolRange(100))
}
