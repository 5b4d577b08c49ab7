package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

type line struct {
	text string
	err  error
}

// Terminal reads answers line by line from in and writes everything to out.
type Terminal struct {
	in       *bufio.Scanner
	lines    chan line
	start    sync.Once
	out      io.Writer
	renderer *BoardRenderer
}

func NewTerminal(in io.Reader, out io.Writer, color bool) *Terminal {
	return &Terminal{
		in:       bufio.NewScanner(in),
		lines:    make(chan line),
		out:      out,
		renderer: NewBoardRenderer(out, color),
	}
}

// read feeds lines until the input ends, then reports the scanner error (or
// io.EOF) and closes the channel.
func (t *Terminal) read() {
	defer close(t.lines)
	for t.in.Scan() {
		t.lines <- line{text: t.in.Text()}
	}
	err := t.in.Err()
	if err == nil {
		err = io.EOF
	}
	t.lines <- line{err: err}
}

// Ask returns [io.EOF] once the input is exhausted, and ctx.Err() if ctx is
// done before a line arrives. A line typed after cancellation is kept for the
// next call.
func (t *Terminal) Ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprintln(t.out, prompt)
	t.start.Do(func() { go t.read() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-t.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

func (t *Terminal) Tell(msg string) {
	fmt.Fprintln(t.out, msg)
}

func (t *Terminal) Show(b *mines.Board) {
	fmt.Fprintln(t.out, t.renderer.Render(b))
}
