package mines

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"math"
)

var ErrInvalidSnapshot = errors.New("invalid snapshot")

type TileState struct {
	Bomb     bool `yaml:"bomb"`
	Revealed bool `yaml:"revealed"`
	Flagged  bool `yaml:"flagged"`
}

// Snapshot is the persisted form of a [Board]. Tiles are stored row by row,
// x-major, the same order the board keeps them in.
type Snapshot struct {
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Tiles  []TileState `yaml:"tiles"`
}

func (b *Board) Snapshot() *Snapshot {
	s := &Snapshot{
		Width:  b.Width,
		Height: b.Height,
		Tiles:  make([]TileState, len(b.tiles)),
	}
	for i, t := range b.tiles {
		s.Tiles[i] = TileState{Bomb: t.bomb, Revealed: t.revealed, Flagged: t.flagged}
	}
	return s
}

// Restore rebuilds a board from s verbatim.
func Restore(s *Snapshot) (*Board, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidSnapshot)
	}
	if s.Width < 1 || s.Height < 1 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrInvalidSnapshot, s.Width, s.Height)
	}
	if s.Width > math.MaxInt/s.Height {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrInvalidSnapshot, s.Width, s.Height)
	}
	if len(s.Tiles) != s.Width*s.Height {
		return nil, fmt.Errorf("%w: have %d tiles, want %d",
			ErrInvalidSnapshot, len(s.Tiles), s.Width*s.Height)
	}
	b := newBoard(s.Width, s.Height)
	for i, ts := range s.Tiles {
		b.tiles[i].bomb = ts.Bomb
		b.tiles[i].revealed = ts.Revealed
		b.tiles[i].flagged = ts.Flagged
	}
	return b, nil
}

func DecodeSnapshot(buf []byte) (*Snapshot, error) {
	var s Snapshot
	if err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s Snapshot) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
