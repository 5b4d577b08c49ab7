package mines

import "fmt"

type Position struct {
	X, Y int
}

// Position implements [fmt.Stringer]
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Tile is a single cell of a [Board]. Tiles are owned by the board and only
// mutated through board methods.
type Tile struct {
	pos      Position
	bomb     bool
	revealed bool
	flagged  bool
}

func (t Tile) Position() Position { return t.pos }
func (t Tile) HasBomb() bool      { return t.bomb }
func (t Tile) Revealed() bool     { return t.revealed }
func (t Tile) Flagged() bool      { return t.flagged }

// PlaceBomb is idempotent.
func (t *Tile) PlaceBomb() {
	t.bomb = true
}
