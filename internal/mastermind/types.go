package mastermind

import "strconv"

// Symbol is one peg value, an index into the alphabet 0..AlphabetSize-1.
type Symbol int

// Code is an ordered sequence of symbols: the secret or a guess.
type Code []Symbol

func (c Code) clone() Code {
	if c == nil {
		return nil
	}
	return append(Code(nil), c...)
}

func (c Code) String() string {
	b := make([]byte, 0, len(c)*2+2)
	b = append(b, '[')
	for i, s := range c {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendInt(b, int64(s), 10)
	}
	return string(append(b, ']'))
}

// Peg is the judgment for a single guess position.
type Peg uint8

const (
	NoMatch Peg = iota
	ColorMatch
	ExactMatch
)

func (p Peg) String() string {
	switch p {
	case ExactMatch:
		return "exact"
	case ColorMatch:
		return "color"
	default:
		return "none"
	}
}

func (p Peg) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Feedback holds one peg per guess position; Feedback[i] judges guess[i].
type Feedback []Peg

// Counts returns how many pegs of each kind the feedback holds.
func (f Feedback) Counts() (exact, color, none int) {
	for _, p := range f {
		switch p {
		case ExactMatch:
			exact++
		case ColorMatch:
			color++
		default:
			none++
		}
	}
	return exact, color, none
}

// Solved reports whether every peg is an exact match.
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, p := range f {
		if p != ExactMatch {
			return false
		}
	}
	return true
}

// Sorted returns the pegs in display order: exact, then color, then none.
func (f Feedback) Sorted() Feedback {
	exact, color, none := f.Counts()
	out := make(Feedback, 0, len(f))
	for i := 0; i < exact; i++ {
		out = append(out, ExactMatch)
	}
	for i := 0; i < color; i++ {
		out = append(out, ColorMatch)
	}
	for i := 0; i < none; i++ {
		out = append(out, NoMatch)
	}
	return out
}

func (f Feedback) clone() Feedback {
	return append(Feedback(nil), f...)
}

// Status is the derived game status.
type Status string

const (
	InProgress Status = "in_progress"
	Won        Status = "won"
	Lost       Status = "lost"
)

// Over reports whether the game has finished.
func (s Status) Over() bool {
	return s == Won || s == Lost
}

// Attempt is one scored guess.
type Attempt struct {
	Guess    Code     `json:"guess"`
	Feedback Feedback `json:"feedback"`
}

func (a Attempt) clone() Attempt {
	return Attempt{Guess: a.Guess.clone(), Feedback: a.Feedback.clone()}
}

// State is a copy of everything a consumer may read from an engine.
// Secret is nil while the game is in progress.
type State struct {
	Config  Config    `json:"config"`
	Status  Status    `json:"status"`
	History []Attempt `json:"history"`
	Secret  Code      `json:"secret,omitempty"`
}
