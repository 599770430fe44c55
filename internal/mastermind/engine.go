package mastermind

import "fmt"

// Engine owns one game: the secret, its config and the scored history.
// It is not safe for concurrent use; callers serialize access.
type Engine struct {
	cfg       Config
	secret    Code
	history   []Attempt
	status    Status
	newSource func() Source
}

type Option func(*Engine)

// WithSource sets the factory used to draw a fresh source for every game.
func WithSource(f func() Source) Option {
	return func(e *Engine) {
		if f != nil {
			e.newSource = f
		}
	}
}

// New validates cfg and starts the first game.
func New(cfg Config, opts ...Option) (*Engine, error) {
	e := &Engine{newSource: NewRandomSource}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.Configure(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Configure replaces the current game with a new one shaped by cfg. On error
// the current game is kept as is.
func (e *Engine) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg
	e.start()
	return nil
}

// Reset starts a new game with the current config.
func (e *Engine) Reset() {
	e.start()
}

func (e *Engine) start() {
	src := e.newSource()
	secret := make(Code, e.cfg.CodeLength)
	for i := range secret {
		secret[i] = Symbol(src.IntN(e.cfg.AlphabetSize))
	}
	e.secret = secret
	e.history = nil
	e.status = InProgress
}

// SubmitGuess scores guess, appends it to the history and updates the
// status. A rejected guess leaves the state untouched.
func (e *Engine) SubmitGuess(guess Code) (Feedback, error) {
	if e.status != InProgress {
		return nil, fmt.Errorf("%w: status %s", ErrGameOver, e.status)
	}
	if len(guess) != e.cfg.CodeLength {
		return nil, fmt.Errorf("%w: got %d symbols, want %d", ErrInvalidGuessLength, len(guess), e.cfg.CodeLength)
	}
	for i, s := range guess {
		if s < 0 || int(s) >= e.cfg.AlphabetSize {
			return nil, fmt.Errorf("%w: %d at position %d, want 0..%d", ErrInvalidSymbol, s, i, e.cfg.AlphabetSize-1)
		}
	}

	fb := Score(e.secret, guess)
	e.history = append(e.history, Attempt{Guess: guess.clone(), Feedback: fb})
	e.status = deriveStatus(e.cfg, e.history)

	return fb.clone(), nil
}

func deriveStatus(cfg Config, history []Attempt) Status {
	if n := len(history); n > 0 {
		exact, _, _ := history[n-1].Feedback.Counts()
		if exact == cfg.CodeLength {
			return Won
		}
	}
	if len(history) >= cfg.MaxAttempts {
		return Lost
	}
	return InProgress
}

func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) Status() Status { return e.status }

// Attempts is the number of guesses scored in the current game.
func (e *Engine) Attempts() int { return len(e.history) }

func (e *Engine) AttemptsLeft() int { return e.cfg.MaxAttempts - len(e.history) }

// History returns a copy of the scored guesses, oldest first.
func (e *Engine) History() []Attempt {
	out := make([]Attempt, len(e.history))
	for i, a := range e.history {
		out[i] = a.clone()
	}
	return out
}

// Secret reveals the secret once the game is over.
func (e *Engine) Secret() (Code, bool) {
	if !e.status.Over() {
		return nil, false
	}
	return e.secret.clone(), true
}

func (e *Engine) State() State {
	secret, _ := e.Secret()
	return State{
		Config:  e.cfg,
		Status:  e.status,
		History: e.History(),
		Secret:  secret,
	}
}
