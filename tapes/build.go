package tapes

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrEmptyTape  = errors.New("empty tape")
	ErrOutOfRange = errors.New("index out of range")
)

// NewWithInput returns a tape holding input from the origin rightwards, with the cursor on the origin.
func NewWithInput(input string) *Tape {
	t := New()
	n := utf8.RuneCountInString(input)
	i := 0
	for _, r := range input {
		t.Write(r)
		i++
		if i < n {
			t.MoveRight()
		}
	}
	for t.position > 0 {
		t.MoveLeft()
	}
	return t
}

// Restore rebuilds a tape from its Raw form, with origin and head given as indexes into raw.
func Restore(raw string, origin, head int) (*Tape, error) {
	runes := []rune(raw)
	if len(runes) == 0 {
		return nil, ErrEmptyTape
	}
	if origin < 0 || origin >= len(runes) {
		return nil, fmt.Errorf("origin %d: %w", origin, ErrOutOfRange)
	}
	if head < 0 || head >= len(runes) {
		return nil, fmt.Errorf("head %d: %w", head, ErrOutOfRange)
	}

	t := &Tape{
		cells:     make([]Cell, 0, len(runes)),
		current:   CellID(head),
		leftmost:  0,
		rightmost: CellID(len(runes) - 1),
		left:      origin,
		position:  head - origin,
	}
	for i, r := range runes {
		cell := Cell{
			Content: r,
			Left:    CellID(i - 1),
			Right:   CellID(i + 1),
		}
		if i == 0 {
			cell.Left = NoCell
		}
		if i == len(runes)-1 {
			cell.Right = NoCell
		}
		t.cells = append(t.cells, cell)
	}
	return t, nil
}
