package mastermind

import "fmt"

const (
	DefaultCodeLength   = 4
	DefaultMaxAttempts  = 8
	DefaultAlphabetSize = 6
)

// Config describes the shape of one game. AlphabetSize may be smaller or
// larger than CodeLength.
type Config struct {
	CodeLength   int `json:"codeLength"`
	MaxAttempts  int `json:"maxAttempts"`
	AlphabetSize int `json:"alphabetSize"`
}

func DefaultConfig() Config {
	return Config{
		CodeLength:   DefaultCodeLength,
		MaxAttempts:  DefaultMaxAttempts,
		AlphabetSize: DefaultAlphabetSize,
	}
}

func (c Config) Validate() error {
	if c.CodeLength < 1 {
		return fmt.Errorf("%w: code length %d, want >= 1", ErrInvalidConfig, c.CodeLength)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts %d, want >= 1", ErrInvalidConfig, c.MaxAttempts)
	}
	if c.AlphabetSize < 1 {
		return fmt.Errorf("%w: alphabet size %d, want >= 1", ErrInvalidConfig, c.AlphabetSize)
	}
	return nil
}
