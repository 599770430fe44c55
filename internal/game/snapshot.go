package game

import "example.com/mastermind/internal/mastermind"

// Snapshot is a read-only copy of the session state for presentation.
// Secret is only set once the game is over.
type Snapshot struct {
	GameID       string               `json:"gameId"`
	Config       mastermind.Config    `json:"config"`
	Status       mastermind.Status    `json:"status"`
	Attempt      int                  `json:"attempt"`
	AttemptsLeft int                  `json:"attemptsLeft"`
	History      []mastermind.Attempt `json:"history"`
	Secret       mastermind.Code      `json:"secret,omitempty"`
	Series       Series               `json:"series"`
}

func (s *Session) snapshotLocked() Snapshot {
	st := s.engine.State()
	return Snapshot{
		GameID:       s.id,
		Config:       st.Config,
		Status:       st.Status,
		Attempt:      len(st.History),
		AttemptsLeft: s.engine.AttemptsLeft(),
		History:      st.History,
		Secret:       st.Secret,
		Series:       s.series,
	}
}

// Over reports whether the snapshot's game has finished.
func (s Snapshot) Over() bool {
	return s.Status.Over()
}
