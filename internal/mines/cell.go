package mines

import "strconv"

type CellState int8

const (
	Unknown  CellState = -2
	Flagged  CellState = -1
	Exploded CellState = 64
	// 0-8 for a revealed safe tile with the given number of mined neighbors
)

func (s CellState) String() string {
	switch s {
	case Unknown:
		return "-"
	case Flagged:
		return "F"
	case Exploded:
		return "*"
	case 0, 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Cell reports what the player sees at p. A flag wins over everything else.
func (b *Board) Cell(p Position) CellState {
	t := b.at(p)
	switch {
	case t.flagged:
		return Flagged
	case !t.revealed:
		return Unknown
	case t.bomb:
		return Exploded
	default:
		return CellState(b.AdjacentBombs(p))
	}
}
