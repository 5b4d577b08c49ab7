package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-console/internal/mines"
	"github.com/vancomm/minesweeper-console/internal/store"
)

const (
	commandPrompt = "Please enter the coordinates of the space you wish to affect.\n" +
		"Possible actions: f = flag, r = reveal, u = unflag (s = save, q = quit)\n" +
		"(Example:  'f, 0, 1')"
	invalidInput     = "Error: Input invalid.  Please re-enter."
	savePrompt       = "What would you like to name your saved game? (empty to cancel)"
	overwritePrompt  = "A saved game by that name already exists.  Overwrite?  (y/n)"
	invalidName      = "Invalid name"
	lostMessage      = "Sorry, you blew up"
	wonMessage       = "You win!!!!"
	gameOverMessage  = "Game Over"
	saveUnavailable  = "Saving is not available"
	saveCancelled    = "Save cancelled"
	saveFailedFormat = "Could not save game: %v"
)

// Console is everything the game needs from the terminal.
type Console interface {
	// Ask shows prompt and returns the next line of input, trimmed. It
	// returns ctx.Err() if ctx is done first.
	Ask(ctx context.Context, prompt string) (string, error)
	Tell(msg string)
	Show(b *mines.Board)
}

// Store keeps named board snapshots.
type Store interface {
	List(ctx context.Context) ([]string, error)
	Load(ctx context.Context, name string) (*mines.Snapshot, error)
	Save(ctx context.Context, name string, s *mines.Snapshot, overwrite bool) error
}

type State int8

const (
	Playing State = iota
	Lost
	Won
	Abandoned
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Abandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

type Game struct {
	board *mines.Board
	state State
	con   Console
	store Store
	log   logrus.FieldLogger
}

// New wraps b in a game. A board that already shows a detonated bomb or a
// won position starts in the matching terminal state. st may be nil, in which
// case saving is disabled.
func New(b *mines.Board, con Console, st Store, log logrus.FieldLogger) *Game {
	g := &Game{
		board: b,
		con:   con,
		store: st,
		log:   log,
	}
	switch {
	case b.Detonated():
		g.state = Lost
	case b.CheckVictory():
		g.state = Won
	}
	return g
}

func (g *Game) Board() *mines.Board { return g.board }
func (g *Game) State() State        { return g.state }

// Apply performs a validated board command and advances the state.
func (g *Game) Apply(cmd Command) State {
	if g.state != Playing {
		return g.state
	}
	switch cmd.Action {
	case Reveal:
		if g.board.Reveal(cmd.Pos) {
			g.state = Lost
			return g.state
		}
	case Flag:
		g.board.Flag(cmd.Pos)
	case Unflag:
		g.board.Unflag(cmd.Pos)
	}
	if g.board.CheckVictory() {
		g.state = Won
	}
	return g.state
}

// Play runs the turn loop until the game is lost, won or abandoned.
func (g *Game) Play(ctx context.Context) (State, error) {
	g.con.Show(g.board)

	for g.state == Playing {
		if err := ctx.Err(); err != nil {
			return g.state, err
		}

		cmd, err := g.readCommand(ctx)
		if err != nil {
			return g.state, err
		}
		if err := ctx.Err(); err != nil {
			return g.state, err
		}

		switch cmd.Action {
		case Save:
			if err := g.save(ctx); err != nil {
				return g.state, err
			}
		case Quit:
			g.state = Abandoned
			g.log.Info("game abandoned")
			return g.state, nil
		default:
			g.Apply(cmd)
			g.log.WithFields(logrus.Fields{
				"action": cmd.Action,
				"pos":    cmd.Pos,
				"state":  g.state,
			}).Debug("command applied")
		}

		if g.state == Playing {
			g.con.Show(g.board)
		}
	}

	switch g.state {
	case Lost:
		g.con.Tell(lostMessage)
	case Won:
		g.con.Tell(wonMessage)
	}
	g.con.Tell(gameOverMessage)
	g.board.RevealAll()
	g.con.Show(g.board)

	g.log.WithField("state", g.state).Info("game over")
	return g.state, nil
}

func (g *Game) readCommand(ctx context.Context) (Command, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Command{}, err
		}
		line, err := g.con.Ask(ctx, commandPrompt)
		if err != nil {
			return Command{}, err
		}
		cmd, err := ParseCommand(line)
		if err == nil {
			err = Validate(g.board, cmd)
		}
		if err != nil {
			g.log.WithError(err).WithField("input", line).Debug("rejected command")
			g.con.Tell(invalidInput)
			continue
		}
		return cmd, nil
	}
}

func (g *Game) save(ctx context.Context) error {
	if g.store == nil {
		g.con.Tell(saveUnavailable)
		return nil
	}

	snapshot := g.board.Snapshot()
	for {
		name, err := g.con.Ask(ctx, savePrompt)
		if err != nil {
			return err
		}
		if name == "" {
			g.con.Tell(saveCancelled)
			return nil
		}

		err = g.store.Save(ctx, name, snapshot, false)
		if errors.Is(err, store.ErrExists) {
			var answer string
			if answer, err = g.con.Ask(ctx, overwritePrompt); err != nil {
				return err
			}
			if !yes(answer) {
				continue
			}
			err = g.store.Save(ctx, name, snapshot, true)
		}

		switch {
		case err == nil:
			g.log.WithField("name", name).Info("game saved")
			g.con.Tell(fmt.Sprintf("Saved game %q", name))
			return nil
		case errors.Is(err, store.ErrBadName):
			g.con.Tell(invalidName)
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			g.log.WithError(err).WithField("name", name).Warn("unable to save game")
			g.con.Tell(fmt.Sprintf(saveFailedFormat, err))
		}
	}
}

func yes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
