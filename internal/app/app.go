package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"example.com/mastermind/internal/config"
	"example.com/mastermind/internal/game"
	"example.com/mastermind/internal/mastermind"
	"example.com/mastermind/internal/textui"
	"golang.org/x/sync/errgroup"
)

const helpText = `type a guess, one symbol per peg (e.g. 0123)
commands:
  :new      start a new game
  :history  show the board
  :help     show this help
  :quit     leave`

type App struct {
	cfg config.Config
	log *slog.Logger

	session *game.Session
	ui      *textui.Renderer
	in      io.Reader
}

type Options struct {
	In  io.Reader // defaults to os.Stdin
	Out io.Writer // defaults to os.Stdout

	// Source overrides the secret generator; nil uses cfg.Game.Seed or fresh randomness.
	Source func() mastermind.Source
}

func New(cfg config.Config, log *slog.Logger, opts Options) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	src := opts.Source
	if src == nil && cfg.Game.Seed != "" {
		log.Warn("using fixed game seed, secrets are reproducible")
		src = mastermind.SeededSource(cfg.Game.Seed)
	}

	session, err := game.NewSession(cfg.Game.Config,
		game.WithLogger(log),
		game.WithSource(src),
	)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	ui := textui.NewRenderer(opts.Out, textui.Options{
		Color: textui.ColorEnabled(cfg.UI.Color, opts.Out),
		JSON:  cfg.UI.Output == "json",
	})

	return &App{cfg: cfg, log: log, session: session, ui: ui, in: opts.In}, nil
}

// Run plays until the input ends, the player quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)

	// The scanner may block in Read past cancellation, so it stays outside the group.
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(a.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				scanErr <- nil
				return
			}
		}
		scanErr <- sc.Err()
	}()

	g, gctx := errgroup.WithContext(ctx)

	a.log.Debug("input loop starting", "output", a.cfg.UI.Output, "color", a.cfg.UI.Color)

	g.Go(func() error {
		defer cancel()
		return a.play(gctx, lines, scanErr)
	})

	g.Go(func() error {
		<-gctx.Done()
		if c, ok := a.in.(io.Closer); ok && a.in != os.Stdin {
			_ = c.Close()
		}
		return nil
	})

	return g.Wait()
}

func (a *App) play(ctx context.Context, lines <-chan string, scanErr <-chan error) error {
	if err := a.ui.Message(helpText); err != nil {
		return err
	}
	if err := a.ui.Board(a.session.Snapshot()); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil && ctx.Err() == nil {
					return fmt.Errorf("read input: %w", err)
				}
				return a.ui.Series(a.session.Series())
			}
			quit, err := a.handle(strings.TrimSpace(line))
			if err != nil {
				return err
			}
			if quit {
				return a.ui.Series(a.session.Series())
			}
		}
	}
}

// handle executes one input line. Only output failures are returned.
func (a *App) handle(line string) (quit bool, err error) {
	switch line {
	case "":
		return false, nil
	case ":quit", ":q":
		return true, nil
	case ":help":
		return false, a.ui.Message(helpText)
	case ":history":
		return false, a.ui.Board(a.session.Snapshot())
	case ":new":
		a.session.Reset()
		return false, a.ui.Board(a.session.Snapshot())
	}

	if strings.HasPrefix(line, ":") {
		return false, a.ui.Error(errors.New("unknown command " + line + ", try :help"))
	}

	snap := a.session.Snapshot()
	guess, err := textui.ParseCode(line, snap.Config.AlphabetSize)
	if err != nil {
		return false, a.ui.Error(err)
	}
	if _, err := a.session.SubmitGuess(guess); err != nil {
		if errors.Is(err, mastermind.ErrGameOver) {
			return false, a.ui.Error(errors.New("game is over, type :new to play again"))
		}
		return false, a.ui.Error(err)
	}

	snap = a.session.Snapshot()
	if err := a.ui.Board(snap); err != nil {
		return false, err
	}
	if snap.Over() {
		return false, a.ui.Message("type :new to play again or :quit to leave")
	}
	return false, nil
}

// Session exposes the underlying game session.
func (a *App) Session() *game.Session {
	return a.session
}
