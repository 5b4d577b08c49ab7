package config

import "fmt"

type Board struct {
	Width         int
	Height        int
	BombFrequency float64
}

func NewBoard() (*Board, error) {
	width, err := lookupInt("MINES_WIDTH", 9)
	if err != nil {
		return nil, err
	}
	height, err := lookupInt("MINES_HEIGHT", 9)
	if err != nil {
		return nil, err
	}
	freq, err := lookupFloat("MINES_BOMB_FREQUENCY", 0.125)
	if err != nil {
		return nil, err
	}

	board := &Board{
		Width:         width,
		Height:        height,
		BombFrequency: freq,
	}
	if err := board.Validate(); err != nil {
		return nil, err
	}
	return board, nil
}

func (b Board) Validate() error {
	if b.Width < 1 || b.Height < 1 {
		return fmt.Errorf("board must be at least 1x1, have %dx%d", b.Width, b.Height)
	}
	if !(0 <= b.BombFrequency && b.BombFrequency <= 1) {
		return fmt.Errorf("bomb frequency must be within [0, 1], have %v", b.BombFrequency)
	}
	return nil
}
