package tapefiles

import (
	"time"

	"github.com/reusee/turingtape/tapes"
)

// Snapshot is the on-disk form of a tape.
// Origin and Head index runes of Cells.
type Snapshot struct {
	Cells  string    `json:"cells"`
	Origin int       `json:"origin"`
	Head   int       `json:"head"`
	Saved  time.Time `json:"saved,omitzero"`
}

func TakeSnapshot(tape *tapes.Tape) Snapshot {
	return Snapshot{
		Cells:  tape.Raw(),
		Origin: tape.Origin(),
		Head:   tape.Head(),
	}
}

func (s Snapshot) Tape() (*tapes.Tape, error) {
	return tapes.Restore(s.Cells, s.Origin, s.Head)
}
