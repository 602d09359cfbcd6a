package tapes

import (
	"errors"
	"fmt"
)

var ErrCorrupted = errors.New("corrupted tape")

// Check walks the whole chain and reports the first broken link or bookkeeping mismatch.
func (t *Tape) Check() error {
	t.init()
	n := CellID(len(t.cells))
	valid := func(id CellID) bool {
		return id >= 0 && id < n
	}

	if !valid(t.leftmost) {
		return fmt.Errorf("leftmost %d: %w", t.leftmost, ErrCorrupted)
	}
	if !valid(t.rightmost) {
		return fmt.Errorf("rightmost %d: %w", t.rightmost, ErrCorrupted)
	}
	if !valid(t.current) {
		return fmt.Errorf("current %d: %w", t.current, ErrCorrupted)
	}
	if l := t.cells[t.leftmost].Left; l != NoCell {
		return fmt.Errorf("leftmost %d has left neighbor %d: %w", t.leftmost, l, ErrCorrupted)
	}

	seen := make([]bool, n)
	index := 0
	head := -1
	last := NoCell
	for id := t.leftmost; id != NoCell; id = t.cells[id].Right {
		if !valid(id) {
			return fmt.Errorf("cell %d links right to %d: %w", last, id, ErrCorrupted)
		}
		if seen[id] {
			return fmt.Errorf("cycle at cell %d: %w", id, ErrCorrupted)
		}
		seen[id] = true
		if left := t.cells[id].Left; left != last {
			return fmt.Errorf("cell %d links left to %d, want %d: %w", id, left, last, ErrCorrupted)
		}
		if id == t.current {
			head = index
		}
		last = id
		index++
	}

	if last != t.rightmost {
		return fmt.Errorf("chain ends at %d, rightmost is %d: %w", last, t.rightmost, ErrCorrupted)
	}
	if index != len(t.cells) {
		return fmt.Errorf("%d of %d cells reachable: %w", index, len(t.cells), ErrCorrupted)
	}
	if head < 0 {
		return fmt.Errorf("current %d not reachable: %w", t.current, ErrCorrupted)
	}
	if head != t.Head() {
		return fmt.Errorf("head at %d, tracked %d: %w", head, t.Head(), ErrCorrupted)
	}
	if t.left < 0 || t.left >= len(t.cells) {
		return fmt.Errorf("origin %d: %w", t.left, ErrCorrupted)
	}
	return nil
}
