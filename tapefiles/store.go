package tapefiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/reusee/turingtape/logs"
	"github.com/reusee/turingtape/tapes"
)

var ErrLocked = errors.New("tape file locked")

// Store keeps one tape in a JSON file.
type Store struct {
	FilePath string
	// Input seeds the tape when the file does not exist yet
	Input  string
	Logger logs.Logger
	// Verify checks tape invariants before every save
	Verify bool
}

// Lock takes the file lock or returns ErrLocked if another holder has it.
func (s *Store) Lock() (unlock func(), err error) {
	lockFile := s.FilePath + ".lock"
	f, err := os.OpenFile(lockFile, os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			// held by another process or left by a crashed one
			return nil, ErrLocked
		}
		return nil, wrap(err)
	}
	f.Close()
	return func() {
		if err := os.Remove(lockFile); err != nil {
			s.Logger.Warn("remove lock file", "path", lockFile, "error", err)
		}
	}, nil
}

func (s *Store) load() (*tapes.Tape, error) {
	data, err := os.ReadFile(s.FilePath)
	if err != nil {
		return nil, err
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.FilePath, err)
	}
	tape, err := snapshot.Tape()
	if err != nil {
		return nil, fmt.Errorf("restore %s: %w", s.FilePath, err)
	}
	return tape, nil
}

func (s *Store) Load() (*tapes.Tape, error) {
	tape, err := s.load()
	if err != nil {
		return nil, wrap(err)
	}
	return tape, nil
}

func (s *Store) Save(tape *tapes.Tape) error {
	if s.Verify {
		if err := tape.Check(); err != nil {
			return wrap(err)
		}
	}

	snapshot := TakeSnapshot(tape)
	snapshot.Saved = time.Now()
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return wrap(err)
	}

	// atomic write
	tmp := s.FilePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return wrap(err)
	}
	if err := os.Rename(tmp, s.FilePath); err != nil {
		return wrap(err)
	}

	s.Logger.Debug("tape saved",
		"path", s.FilePath,
		"cells", tape.Len(),
		"position", tape.Position(),
	)
	return nil
}

// Update loads the tape under the file lock, applies fn and saves the result.
// A missing file starts from a tape seeded with Input.
// Nothing is saved if fn returns an error.
func (s *Store) Update(ctx context.Context, fn func(ctx context.Context, tape *tapes.Tape) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	unlock, err := s.Lock()
	if err != nil {
		return err
	}
	defer unlock()

	tape, err := s.load()
	if errors.Is(err, fs.ErrNotExist) {
		tape = tapes.NewWithInput(s.Input)
		s.Logger.InfoContext(ctx, "new tape",
			"path", s.FilePath,
			"input", s.Input,
		)
	} else if err != nil {
		return logs.WrapSpan(ctx, wrap(err))
	}

	if err := fn(ctx, tape); err != nil {
		return err
	}

	if err := s.Save(tape); err != nil {
		return logs.WrapSpan(ctx, err)
	}
	return nil
}
