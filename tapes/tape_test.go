package tapes

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func mustCheck(t *testing.T, tape *Tape) {
	t.Helper()
	if err := tape.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestNew(t *testing.T) {
	tape := New()
	mustCheck(t, tape)
	if got := tape.Contents(); got != "" {
		t.Fatalf("got %q", got)
	}
	if tape.Len() != 1 {
		t.Fatalf("got %d cells", tape.Len())
	}
	if tape.Current() != tape.Leftmost() {
		t.Fatal("current should be leftmost")
	}
	if tape.Read() != Blank {
		t.Fatalf("got %q", tape.Read())
	}
	cell := tape.Cell(tape.Current())
	if cell.Left != NoCell || cell.Right != NoCell {
		t.Fatalf("got %+v", cell)
	}
}

func TestZeroValue(t *testing.T) {
	var tape Tape
	if tape.Read() != Blank {
		t.Fatal()
	}
	tape.Write('x')
	tape.MoveLeft()
	mustCheck(t, &tape)
	if got := tape.Contents(); got != "x" {
		t.Fatalf("got %q", got)
	}
}

func TestReadWrite(t *testing.T) {
	tape := New()
	for _, c := range "abc√ü日 " {
		tape.Write(c)
		if got := tape.Read(); got != c {
			t.Fatalf("got %q, want %q", got, c)
		}
	}

	// after movement history
	tape.MoveLeft()
	tape.MoveLeft()
	tape.MoveRight()
	tape.Write('z')
	if got := tape.Read(); got != 'z' {
		t.Fatalf("got %q", got)
	}
	mustCheck(t, tape)
}

func TestWriteKeepsNeighbors(t *testing.T) {
	tape := New()
	tape.MoveRight()
	tape.MoveLeft()
	before := tape.Cell(tape.Current())
	current := tape.Current()
	tape.Write('q')
	after := tape.Cell(tape.Current())
	if tape.Current() != current {
		t.Fatal("cursor moved")
	}
	if before.Left != after.Left || before.Right != after.Right {
		t.Fatalf("got %+v, want links of %+v", after, before)
	}
}

func TestHi(t *testing.T) {
	tape := New()
	tape.Write('H')
	tape.MoveRight()
	tape.Write('i')
	tape.MoveLeft()
	if got := tape.Contents(); got != "Hi" {
		t.Fatalf("got %q", got)
	}
	mustCheck(t, tape)
}

func TestInteriorBlank(t *testing.T) {
	tape := New()
	tape.MoveLeft()
	tape.Write('a')
	tape.MoveRight()
	tape.MoveRight()
	tape.Write('b')
	if got := tape.Contents(); got != "a b" {
		t.Fatalf("got %q", got)
	}
	if got := tape.Raw(); got != "a b" {
		t.Fatalf("got %q", got)
	}
	mustCheck(t, tape)
}

func TestTrimEdges(t *testing.T) {
	tape := New()
	tape.MoveLeft()
	tape.MoveLeft()
	tape.MoveRight()
	tape.Write('x')
	tape.MoveRight()
	tape.MoveRight()
	tape.MoveRight()
	tape.Write('y')
	tape.MoveRight()
	tape.MoveRight()
	if got := tape.Raw(); got != " x  y  " {
		t.Fatalf("got %q", got)
	}
	if got := tape.Contents(); got != "x  y" {
		t.Fatalf("got %q", got)
	}
}

func TestMoveLeftRight(t *testing.T) {
	t.Run("materialized", func(t *testing.T) {
		tape := New()
		start := tape.Current()
		tape.MoveLeft()
		left := tape.Current()
		tape.MoveRight()
		if tape.Current() != start {
			t.Fatalf("got %d, want %d", tape.Current(), start)
		}
		if tape.Cell(left).Content != Blank {
			t.Fatal("new cell should be blank")
		}
		if tape.Cell(start).Left != left {
			t.Fatal("new cell should stay linked")
		}
		mustCheck(t, tape)
	})

	t.Run("existing", func(t *testing.T) {
		tape := New()
		tape.MoveRight()
		tape.MoveLeft()
		tape.MoveLeft()
		tape.MoveRight()
		n := tape.Len()
		start := tape.Current()
		tape.MoveLeft()
		tape.MoveRight()
		if tape.Current() != start {
			t.Fatalf("got %d, want %d", tape.Current(), start)
		}
		if tape.Len() != n {
			t.Fatalf("got %d cells, want %d", tape.Len(), n)
		}
	})
}

func TestLeftmostTracking(t *testing.T) {
	tape := New()
	for i := range 5 {
		tape.MoveLeft()
		if tape.Current() != tape.Leftmost() {
			t.Fatalf("step %d: current %d, leftmost %d", i, tape.Current(), tape.Leftmost())
		}
		if tape.Cell(tape.Current()).Left != NoCell {
			t.Fatalf("step %d: leftmost has a left neighbor", i)
		}
		tape.Write(rune('a' + i))
	}
	if got := tape.Contents(); got != "edcba" {
		t.Fatalf("got %q", got)
	}

	// moving right never changes leftmost
	leftmost := tape.Leftmost()
	for range 10 {
		tape.MoveRight()
	}
	if tape.Leftmost() != leftmost {
		t.Fatal("leftmost changed")
	}

	// moving left through existing cells never changes leftmost
	for range 10 {
		tape.MoveLeft()
	}
	if tape.Leftmost() != leftmost {
		t.Fatal("leftmost changed")
	}
	if tape.Current() != leftmost {
		t.Fatal("should be back on leftmost")
	}
	mustCheck(t, tape)
}

func TestScale(t *testing.T) {
	const n = 10000
	tape := New()
	start := tape.Current()
	for range n {
		tape.MoveRight()
	}
	for range n {
		tape.MoveLeft()
	}
	if tape.Current() != start {
		t.Fatalf("got %d, want %d", tape.Current(), start)
	}
	if tape.Len() != n+1 {
		t.Fatalf("got %d cells", tape.Len())
	}
	count := 0
	for id := start; id != NoCell; id = tape.Cell(id).Right {
		count++
	}
	if count != n+1 {
		t.Fatalf("got %d cells right of start", count)
	}
	mustCheck(t, tape)
}

func TestAllocationPerMove(t *testing.T) {
	tape := New()
	for i := range 100 {
		n := tape.Len()
		if i%3 == 0 {
			tape.MoveLeft()
		} else {
			tape.MoveRight()
		}
		if d := tape.Len() - n; d > 1 {
			t.Fatalf("materialized %d cells in one move", d)
		}
	}
}

func TestPosition(t *testing.T) {
	tape := New()
	tape.MoveLeft()
	tape.MoveLeft()
	if tape.Position() != -2 {
		t.Fatalf("got %d", tape.Position())
	}
	if tape.Origin() != 2 || tape.Head() != 0 {
		t.Fatalf("got origin %d head %d", tape.Origin(), tape.Head())
	}
	tape.MoveRight()
	tape.MoveRight()
	tape.MoveRight()
	if tape.Position() != 1 {
		t.Fatalf("got %d", tape.Position())
	}
	if tape.Head() != 3 {
		t.Fatalf("got %d", tape.Head())
	}
}

func TestCells(t *testing.T) {
	tape := NewWithInput("abc")
	tape.MoveLeft()
	tape.Write('z')

	var positions []int
	var b strings.Builder
	for pos, c := range tape.Cells() {
		positions = append(positions, pos)
		b.WriteRune(c)
	}
	if b.String() != "zabc" {
		t.Fatalf("got %q", b.String())
	}
	want := []int{-1, 0, 1, 2}
	for i, pos := range positions {
		if pos != want[i] {
			t.Fatalf("got %v", positions)
		}
	}

	// early break
	n := 0
	for range tape.Cells() {
		n++
		break
	}
	if n != 1 {
		t.Fatal()
	}
}

func TestRandomWalk(t *testing.T) {
	rnd := rand.New(rand.NewPCG(42, 1))
	tape := New()
	model := make(map[int]rune)
	pos := 0
	minPos, maxPos := 0, 0

	for i := range 5000 {
		switch rnd.IntN(4) {
		case 0:
			tape.MoveLeft()
			pos--
		case 1:
			tape.MoveRight()
			pos++
		case 2:
			c := rune('a' + rnd.IntN(26))
			if rnd.IntN(4) == 0 {
				c = Blank
			}
			tape.Write(c)
			model[pos] = c
		case 3:
			want, ok := model[pos]
			if !ok {
				want = Blank
			}
			if got := tape.Read(); got != want {
				t.Fatalf("step %d: got %q, want %q", i, got, want)
			}
		}
		minPos = min(minPos, pos)
		maxPos = max(maxPos, pos)
		if tape.Position() != pos {
			t.Fatalf("step %d: position %d, want %d", i, tape.Position(), pos)
		}
	}
	mustCheck(t, tape)

	if tape.Len() != maxPos-minPos+1 {
		t.Fatalf("got %d cells, want %d", tape.Len(), maxPos-minPos+1)
	}
	var b strings.Builder
	for p := minPos; p <= maxPos; p++ {
		c, ok := model[p]
		if !ok {
			c = Blank
		}
		b.WriteRune(c)
	}
	if got := tape.Raw(); got != b.String() {
		t.Fatalf("got %q, want %q", got, b.String())
	}
	if got, want := tape.Contents(), strings.Trim(b.String(), " "); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
