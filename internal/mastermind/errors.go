package mastermind

import "errors"

var (
	ErrInvalidConfig      = errors.New("invalid game config")
	ErrInvalidGuessLength = errors.New("invalid guess length")
	ErrInvalidSymbol      = errors.New("invalid symbol")
	ErrGameOver           = errors.New("game already over")
)
