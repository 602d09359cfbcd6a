package tapes

import (
	"iter"
	"strings"
)

const Blank = ' '

type CellID int

const NoCell CellID = -1

type Cell struct {
	Content rune
	Left    CellID
	Right   CellID
}

// Tape is an unbounded two-way sequence of cells.
// Cells are stored in one slice and linked by index.
// The zero value is a blank tape.
// A Tape is not safe for concurrent use.
type Tape struct {
	cells     []Cell
	current   CellID
	leftmost  CellID
	rightmost CellID
	// cells materialized left of the origin
	left int
	// cursor offset from the origin
	position int
}

func New() *Tape {
	t := new(Tape)
	t.init()
	return t
}

func (t *Tape) init() {
	if len(t.cells) > 0 {
		return
	}
	t.cells = append(t.cells, Cell{
		Content: Blank,
		Left:    NoCell,
		Right:   NoCell,
	})
	t.current = 0
	t.leftmost = 0
	t.rightmost = 0
}

func (t *Tape) materialize(left, right CellID) CellID {
	id := CellID(len(t.cells))
	t.cells = append(t.cells, Cell{
		Content: Blank,
		Left:    left,
		Right:   right,
	})
	return id
}

func (t *Tape) Read() rune {
	t.init()
	return t.cells[t.current].Content
}

func (t *Tape) Write(c rune) {
	t.init()
	t.cells[t.current].Content = c
}

func (t *Tape) MoveLeft() {
	t.init()
	if t.cells[t.current].Left == NoCell {
		id := t.materialize(NoCell, t.current)
		t.cells[t.current].Left = id
		t.leftmost = id
		t.left++
	}
	t.current = t.cells[t.current].Left
	t.position--
}

func (t *Tape) MoveRight() {
	t.init()
	if t.cells[t.current].Right == NoCell {
		id := t.materialize(t.current, NoCell)
		t.cells[t.current].Right = id
		t.rightmost = id
	}
	t.current = t.cells[t.current].Right
	t.position++
}

// Contents returns the materialized cells from left to right, without leading and trailing blanks.
func (t *Tape) Contents() string {
	return strings.Trim(t.Raw(), string(Blank))
}

func (t *Tape) String() string {
	return t.Contents()
}

// Raw returns all materialized cells from left to right.
func (t *Tape) Raw() string {
	t.init()
	var b strings.Builder
	b.Grow(len(t.cells))
	for id := t.leftmost; id != NoCell; id = t.cells[id].Right {
		b.WriteRune(t.cells[id].Content)
	}
	return b.String()
}

// Cells iterates materialized cells from left to right, yielding positions relative to the origin.
func (t *Tape) Cells() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		t.init()
		pos := -t.left
		for id := t.leftmost; id != NoCell; id = t.cells[id].Right {
			if !yield(pos, t.cells[id].Content) {
				return
			}
			pos++
		}
	}
}

func (t *Tape) Current() CellID {
	t.init()
	return t.current
}

func (t *Tape) Leftmost() CellID {
	t.init()
	return t.leftmost
}

func (t *Tape) Rightmost() CellID {
	t.init()
	return t.rightmost
}

func (t *Tape) Cell(id CellID) Cell {
	t.init()
	return t.cells[id]
}

func (t *Tape) Len() int {
	t.init()
	return len(t.cells)
}

// Position returns the cursor offset from the origin cell.
func (t *Tape) Position() int {
	return t.position
}

// Origin returns the index of the origin cell in Raw.
func (t *Tape) Origin() int {
	return t.left
}

// Head returns the index of the current cell in Raw.
func (t *Tape) Head() int {
	return t.left + t.position
}
