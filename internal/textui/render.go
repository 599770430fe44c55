package textui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"example.com/mastermind/internal/game"
	"example.com/mastermind/internal/mastermind"
	"github.com/TwiN/go-color"
	"golang.org/x/term"
)

const (
	pegExact = "●"
	pegColor = "○"
	pegNone  = "·"
)

var palette = []string{
	color.Red,
	color.Green,
	color.Blue,
	color.Yellow,
	color.Purple,
	color.Cyan,
	color.White,
	color.Gray,
}

type Options struct {
	Color bool
	JSON  bool // one JSON object per line instead of text
}

// Renderer draws engine state for a terminal. It never mutates the session.
type Renderer struct {
	w    io.Writer
	opts Options
}

func NewRenderer(w io.Writer, opts Options) *Renderer {
	return &Renderer{w: w, opts: opts}
}

// ColorEnabled resolves a UI_COLOR mode (auto|always|never) for w.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (r *Renderer) paint(c, s string) string {
	if !r.opts.Color {
		return s
	}
	return color.Ize(c, s)
}

// Code renders symbols separated by spaces.
func (r *Renderer) Code(c mastermind.Code) string {
	parts := make([]string, len(c))
	for i, s := range c {
		ch := symbolChar(s)
		if s >= 0 {
			ch = r.paint(palette[int(s)%len(palette)], ch)
		}
		parts[i] = ch
	}
	return strings.Join(parts, " ")
}

// Feedback renders result pegs in display order.
func (r *Renderer) Feedback(fb mastermind.Feedback) string {
	var b strings.Builder
	for _, p := range fb.Sorted() {
		switch p {
		case mastermind.ExactMatch:
			b.WriteString(r.paint(color.Green, pegExact))
		case mastermind.ColorMatch:
			b.WriteString(r.paint(color.Yellow, pegColor))
		default:
			b.WriteString(r.paint(color.Gray, pegNone))
		}
	}
	return b.String()
}

// Board writes every attempt followed by the status line.
func (r *Renderer) Board(snap game.Snapshot) error {
	if r.opts.JSON {
		return r.writeJSON(snap)
	}

	width := len(fmt.Sprint(snap.Config.MaxAttempts))
	for i, a := range snap.History {
		if _, err := fmt.Fprintf(r.w, "%*d  %s  %s\n", width, i+1, r.Code(a.Guess), r.Feedback(a.Feedback)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.w, r.Status(snap))
	return err
}

// Status is a one-line summary of where the game stands.
func (r *Renderer) Status(snap game.Snapshot) string {
	switch snap.Status {
	case mastermind.Won:
		return fmt.Sprintf("solved in %d/%d! secret: %s", snap.Attempt, snap.Config.MaxAttempts, r.Code(snap.Secret))
	case mastermind.Lost:
		return fmt.Sprintf("out of attempts. secret was: %s", r.Code(snap.Secret))
	default:
		return fmt.Sprintf("attempt %d/%d, %d pegs from %s",
			snap.Attempt+1, snap.Config.MaxAttempts, snap.Config.CodeLength, SymbolRange(snap.Config.AlphabetSize))
	}
}

func (r *Renderer) Series(s game.Series) error {
	if r.opts.JSON {
		return r.writeJSON(map[string]game.Series{"series": s})
	}
	_, err := fmt.Fprintf(r.w, "won %d, lost %d, abandoned %d\n", s.Wins, s.Losses, s.Abandoned)
	return err
}

func (r *Renderer) Error(err error) error {
	if r.opts.JSON {
		return r.writeJSON(map[string]string{"error": err.Error()})
	}
	_, werr := fmt.Fprintln(r.w, r.paint(color.Red, "error: "+err.Error()))
	return werr
}

func (r *Renderer) Message(msg string) error {
	if r.opts.JSON {
		return r.writeJSON(map[string]string{"message": msg})
	}
	_, err := fmt.Fprintln(r.w, msg)
	return err
}

func (r *Renderer) writeJSON(v any) error {
	return json.NewEncoder(r.w).Encode(v)
}
