package game

import (
	"log/slog"
	"sync"

	"example.com/mastermind/internal/mastermind"
	"github.com/google/uuid"
)

// Session serializes access to one engine and tracks the games played
// through it in this process.
type Session struct {
	mu sync.Mutex

	id     string
	engine *mastermind.Engine
	series Series

	log      *slog.Logger
	source   func() mastermind.Source
	onChange func(Snapshot)
}

// Series counts finished games. A game replaced while still in progress
// is abandoned.
type Series struct {
	Wins      int `json:"wins"`
	Losses    int `json:"losses"`
	Abandoned int `json:"abandoned"`
}

type Option func(*Session)

func WithLogger(log *slog.Logger) Option {
	return func(s *Session) { s.log = log }
}

func WithSource(f func() mastermind.Source) Option {
	return func(s *Session) { s.source = f }
}

// WithOnChange registers a hook called after every state transition.
// It runs with the session lock held and must not call back into the session.
func WithOnChange(f func(Snapshot)) Option {
	return func(s *Session) { s.onChange = f }
}

func NewSession(cfg mastermind.Config, opts ...Option) (*Session, error) {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.Default()
	}

	e, err := mastermind.New(cfg, mastermind.WithSource(s.source))
	if err != nil {
		return nil, err
	}
	s.engine = e

	s.mu.Lock()
	defer s.mu.Unlock()
	s.startedLocked()
	return s, nil
}

func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *Session) Series() Series {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.series
}

func (s *Session) SubmitGuess(guess mastermind.Code) (mastermind.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fb, err := s.engine.SubmitGuess(guess)
	if err != nil {
		s.log.Debug("guess rejected", "game", s.id, "err", err)
		return nil, err
	}

	exact, color, _ := fb.Counts()
	s.log.Debug("guess scored",
		"game", s.id,
		"attempt", s.engine.Attempts(),
		"exact", exact,
		"color", color,
	)

	switch st := s.engine.Status(); st {
	case mastermind.Won:
		s.series.Wins++
		s.finishedLocked(st)
	case mastermind.Lost:
		s.series.Losses++
		s.finishedLocked(st)
	}

	s.notifyLocked()
	return fb, nil
}

// Reset starts a new game with the current config.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.abandonLocked()
	s.engine.Reset()
	s.startedLocked()
}

// Reconfigure starts a new game shaped by cfg. An invalid cfg keeps the
// current game running.
func (s *Session) Reconfigure(cfg mastermind.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := cfg.Validate(); err != nil {
		return err
	}
	s.abandonLocked()
	if err := s.engine.Configure(cfg); err != nil {
		return err
	}
	s.startedLocked()
	return nil
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) abandonLocked() {
	if s.engine.Status() == mastermind.InProgress && s.engine.Attempts() > 0 {
		s.series.Abandoned++
		s.log.Info("game abandoned", "game", s.id, "attempts", s.engine.Attempts())
	}
}

func (s *Session) startedLocked() {
	s.id = uuid.NewString()
	cfg := s.engine.Config()
	s.log.Info("game started",
		"game", s.id,
		"code_length", cfg.CodeLength,
		"max_attempts", cfg.MaxAttempts,
		"alphabet_size", cfg.AlphabetSize,
	)
	s.notifyLocked()
}

func (s *Session) finishedLocked(st mastermind.Status) {
	s.log.Info("game finished", "game", s.id, "status", st, "attempts", s.engine.Attempts())
}

func (s *Session) notifyLocked() {
	if s.onChange == nil {
		return
	}
	s.onChange(s.snapshotLocked())
}
