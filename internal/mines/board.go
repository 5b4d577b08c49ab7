package mines

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

var ErrInvalidParams = errors.New("invalid board parameters")

// Board owns a Width x Height arena of tiles. X selects the row and ranges
// over [0, Width), Y selects the column and ranges over [0, Height).
type Board struct {
	Width, Height int
	tiles         []Tile
}

func newBoard(width, height int) *Board {
	b := &Board{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}
	for x := range width {
		for y := range height {
			b.tiles[b.index(Position{x, y})].pos = Position{x, y}
		}
	}
	return b
}

// TotalBombs is the number of bombs [Populate] places on a board of the given
// size.
func TotalBombs(bombFrequency float64, width, height int) int {
	return int(math.Floor(bombFrequency * float64(width) * float64(height)))
}

// Populate allocates a fresh board and places exactly
// floor(bombFrequency*width*height) bombs on distinct, uniformly chosen tiles.
func Populate(bombFrequency float64, width, height int, r *rand.Rand) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrInvalidParams, width, height)
	}
	if !(0 <= bombFrequency && bombFrequency <= 1) {
		return nil, fmt.Errorf("%w: bomb frequency %v", ErrInvalidParams, bombFrequency)
	}

	b := newBoard(width, height)
	totalBombs := TotalBombs(bombFrequency, width, height)

	candidates := make([]int, len(b.tiles))
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range totalBombs {
		i := r.IntN(k)
		b.tiles[candidates[i]].PlaceBomb()
		k--
		candidates[i] = candidates[k]
	}

	return b, nil
}

func (b *Board) index(p Position) int {
	return p.X*b.Height + p.Y
}

func (b *Board) at(p Position) *Tile {
	return &b.tiles[b.index(p)]
}

func (b *Board) Contains(p Position) bool {
	return 0 <= p.X && p.X < b.Width && 0 <= p.Y && p.Y < b.Height
}

// Tile returns a copy of the tile at p. p must be on the board.
func (b *Board) Tile(p Position) Tile {
	return *b.at(p)
}

// Neighbors returns the Moore neighborhood of p clipped to the board, in
// row-major order.
func (b *Board) Neighbors(p Position) []Position {
	neighbors := make([]Position, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Position{p.X + dx, p.Y + dy}
			if b.Contains(n) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

func (b *Board) AdjacentBombs(p Position) int {
	count := 0
	for _, n := range b.Neighbors(p) {
		if b.at(n).bomb {
			count++
		}
	}
	return count
}

// Reveal opens the tile at p and reports whether it held a bomb. Revealed and
// flagged tiles are left alone. Opening a tile with no adjacent bombs opens
// its neighbors in turn, until the cascade reaches numbered tiles.
func (b *Board) Reveal(p Position) (detonated bool) {
	t := b.at(p)
	if t.revealed || t.flagged {
		return false
	}
	t.revealed = true
	if t.bomb {
		return true
	}

	todo := []Position{p}
	for len(todo) > 0 {
		cur := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if b.AdjacentBombs(cur) != 0 {
			continue
		}
		for _, n := range b.Neighbors(cur) {
			nt := b.at(n)
			if nt.revealed || nt.flagged {
				continue
			}
			/* a tile with no mined neighbors never borders a bomb */
			nt.revealed = true
			todo = append(todo, n)
		}
	}
	return false
}

// Flag marks an unrevealed tile. It is a no-op on revealed tiles.
func (b *Board) Flag(p Position) {
	if t := b.at(p); !t.revealed {
		t.flagged = true
	}
}

func (b *Board) Unflag(p Position) {
	b.at(p).flagged = false
}

// RevealAll reveals every tile the way [Board.Reveal] would, so flagged tiles
// stay covered.
func (b *Board) RevealAll() {
	for i := range b.tiles {
		b.Reveal(b.tiles[i].pos)
	}
}

// Detonated reports whether any bomb has been revealed.
func (b *Board) Detonated() bool {
	for _, t := range b.tiles {
		if t.bomb && t.revealed {
			return true
		}
	}
	return false
}

type Counts struct {
	Bombs, Flagged, Unrevealed int
}

func (b *Board) Counts() (c Counts) {
	for _, t := range b.tiles {
		if t.bomb {
			c.Bombs++
		}
		if t.flagged {
			c.Flagged++
		}
		if !t.revealed {
			c.Unrevealed++
		}
	}
	return
}

// CheckVictory holds iff exactly the bombs are flagged and nothing else is
// left covered.
func (b *Board) CheckVictory() bool {
	c := b.Counts()
	return c.Flagged == c.Bombs && c.Flagged == c.Unrevealed
}
