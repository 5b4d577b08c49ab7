package game

import (
	"errors"
	"strconv"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

type Action int8

const (
	Reveal Action = iota + 1
	Flag
	Unflag
	Save
	Quit
)

func (a Action) String() string {
	switch a {
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	case Unflag:
		return "unflag"
	case Save:
		return "save"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Maps known actions to number of coordinate arguments
var actions = map[string]struct {
	action Action
	nargs  int
}{
	"r": {Reveal, 2},
	"f": {Flag, 2},
	"u": {Unflag, 2},
	"s": {Save, 0},
	"q": {Quit, 0},
}

var (
	ErrUnknownAction   = errors.New("unknown action")
	ErrArgumentCount   = errors.New("invalid number of arguments")
	ErrBadCoordinate   = errors.New("coordinates must be integers")
	ErrOutOfBounds     = errors.New("coordinates out of bounds")
	ErrAlreadyRevealed = errors.New("tile is already revealed")
	ErrNotFlagged      = errors.New("tile is not flagged")
)

type Command struct {
	Action Action
	Pos    mines.Position
}

// ParseCommand reads "action,x,y" with any whitespace removed. Save and quit
// take no coordinates.
func ParseCommand(input string) (Command, error) {
	var parts []string
	for _, p := range byPiece(stripSpace(input), ",") {
		parts = append(parts, p)
	}

	known, ok := actions[parts[0]]
	if !ok {
		return Command{}, ErrUnknownAction
	}
	if known.nargs != len(parts)-1 {
		return Command{}, ErrArgumentCount
	}

	cmd := Command{Action: known.action}
	if known.nargs == 0 {
		return cmd, nil
	}
	x, err := strconv.Atoi(parts[1])
	if err != nil {
		return Command{}, ErrBadCoordinate
	}
	y, err := strconv.Atoi(parts[2])
	if err != nil {
		return Command{}, ErrBadCoordinate
	}
	cmd.Pos = mines.Position{X: x, Y: y}
	return cmd, nil
}

// Validate rejects a board command before it can touch the board.
func Validate(b *mines.Board, cmd Command) error {
	switch cmd.Action {
	case Reveal, Flag, Unflag:
	case Save, Quit:
		return nil
	default:
		return ErrUnknownAction
	}
	if !b.Contains(cmd.Pos) {
		return ErrOutOfBounds
	}
	t := b.Tile(cmd.Pos)
	if t.Revealed() {
		return ErrAlreadyRevealed
	}
	if cmd.Action == Unflag && !t.Flagged() {
		return ErrNotFlagged
	}
	return nil
}
