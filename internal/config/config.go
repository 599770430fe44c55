package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"example.com/mastermind/internal/mastermind"
	"example.com/mastermind/internal/textui"
)

// Config describes all runtime settings for the game.
//
// Loaded once in main, validated, then passed down explicitly.
type Config struct {
	Env string // dev|prod

	Log struct {
		Format string // text|json
		Level  slog.Level
	}

	Game struct {
		mastermind.Config
		Seed string // empty => fresh random seed per game
	}

	UI struct {
		Color  string // auto|always|never
		Output string // text|json
	}
}

func LoadFromEnv() (Config, error) {
	var c Config

	c.Env = envString("APP_ENV", "dev")
	c.Log.Format = envString("LOG_FORMAT", "text")

	lvl, err := parseLevel(envString("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.Log.Level = lvl

	c.Game.CodeLength = envInt("CODE_LENGTH", mastermind.DefaultCodeLength)
	c.Game.MaxAttempts = envInt("MAX_ATTEMPTS", mastermind.DefaultMaxAttempts)
	c.Game.AlphabetSize = envInt("ALPHABET_SIZE", mastermind.DefaultAlphabetSize)
	c.Game.Seed = envString("GAME_SEED", "")

	c.UI.Color = envString("UI_COLOR", "auto")
	c.UI.Output = envString("UI_OUTPUT", "text")

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if err := c.Game.Config.Validate(); err != nil {
		return err
	}
	if c.Game.AlphabetSize > textui.MaxAlphabet {
		return fmt.Errorf("ALPHABET_SIZE=%d exceeds %d typeable symbols", c.Game.AlphabetSize, textui.MaxAlphabet)
	}
	if c.Env != "dev" && c.Game.Seed != "" {
		return fmt.Errorf("refuse to run with fixed GAME_SEED in %s", c.Env)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	switch c.UI.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unsupported UI_COLOR=%q (want auto|always|never)", c.UI.Color)
	}
	if c.UI.Output != "text" && c.UI.Output != "json" {
		return fmt.Errorf("unsupported UI_OUTPUT=%q (want text|json)", c.UI.Output)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, errors.New("unsupported LOG_LEVEL=" + strconv.Quote(s) + " (want debug|info|warn|error)")
	}
	return lvl, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
