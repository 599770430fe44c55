package textui

import (
	"fmt"
	"strings"

	"example.com/mastermind/internal/mastermind"
)

// Symbols lists the typed form of each symbol, by index.
const Symbols = "0123456789abcdefghijklmnopqrstuvwxyz"

// MaxAlphabet is the largest alphabet that can be typed.
const MaxAlphabet = len(Symbols)

// ParseCode reads one symbol per character. Whitespace, commas and dashes
// are separators. The length is not checked here; the engine does that.
func ParseCode(s string, alphabetSize int) (mastermind.Code, error) {
	var code mastermind.Code
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '\t', ',', '-':
			continue
		}
		i := strings.IndexRune(Symbols, r)
		if i < 0 || i >= alphabetSize {
			return nil, fmt.Errorf("%w: %q, want one of %s", mastermind.ErrInvalidSymbol, r, SymbolRange(alphabetSize))
		}
		code = append(code, mastermind.Symbol(i))
	}
	return code, nil
}

// SymbolRange describes the typeable symbols, e.g. "0-5".
func SymbolRange(alphabetSize int) string {
	if alphabetSize > MaxAlphabet {
		alphabetSize = MaxAlphabet
	}
	if alphabetSize <= 1 {
		return Symbols[:1]
	}
	return Symbols[:1] + "-" + Symbols[alphabetSize-1:alphabetSize]
}

func symbolChar(s mastermind.Symbol) string {
	if s < 0 || int(s) >= MaxAlphabet {
		return "?"
	}
	return Symbols[s : s+1]
}
