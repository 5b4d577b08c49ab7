package game

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

const (
	loadPrompt     = "Would you like to load a previous game? (y/n)"
	loadNamePrompt = "What is the name of the saved game? (empty for a new game)"
	savedGames     = "Saved games: "
)

type Params struct {
	BombFrequency float64
	Width, Height int
}

var DefaultParams = Params{BombFrequency: 0.125, Width: 9, Height: 9}

// Start offers to load a saved game and otherwise populates a fresh board.
func Start(
	ctx context.Context, con Console, st Store, params Params,
	r *rand.Rand, log logrus.FieldLogger,
) (*Game, error) {
	if st != nil {
		answer, err := con.Ask(ctx, loadPrompt)
		if err != nil {
			return nil, err
		}
		if yes(answer) {
			b, err := load(ctx, con, st, log)
			if err != nil {
				return nil, err
			}
			if b != nil {
				return New(b, con, st, log), nil
			}
		}
	}

	b, err := mines.Populate(params.BombFrequency, params.Width, params.Height, r)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"width":          params.Width,
		"height":         params.Height,
		"bomb_frequency": params.BombFrequency,
		"bombs":          b.Counts().Bombs,
	}).Info("new game")
	return New(b, con, st, log), nil
}

// load keeps asking for a name until a saved game restores. A nil board means
// the player gave up and wants a new game.
func load(ctx context.Context, con Console, st Store, log logrus.FieldLogger) (*mines.Board, error) {
	names, err := st.List(ctx)
	if err != nil {
		log.WithError(err).Warn("unable to list saved games")
	} else if len(names) > 0 {
		con.Tell(savedGames + strings.Join(names, ", "))
	}

	for {
		name, err := con.Ask(ctx, loadNamePrompt)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, nil
		}

		snapshot, err := st.Load(ctx, name)
		if err == nil {
			var b *mines.Board
			if b, err = mines.Restore(snapshot); err == nil {
				log.WithField("name", name).Info("game loaded")
				return b, nil
			}
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.WithError(err).WithField("name", name).Debug("unable to load game")
		con.Tell(invalidName)
	}
}
