package rfdim

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

// Snapshot is a TOML checkpoint of a whole editing session: which
// structure was loaded and the encoded state of its residues. Unlike the
// plain-text save file it records the structure path, so a session can
// be resumed without retyping it.
type Snapshot struct {
	Structure  string    `toml:"structure"`
	Saved      time.Time `toml:"saved"`
	Contigs    string    `toml:"contigs"`
	InpaintSeq string    `toml:"inpaint_seq"`
}

// NewSnapshot captures the current session state.
func NewSnapshot(s *Structure, m *StateMap) Snapshot {
	contigs, inpaint := m.Export()
	return Snapshot{
		Structure:  s.Path,
		Saved:      time.Now().UTC().Truncate(time.Second),
		Contigs:    contigs,
		InpaintSeq: inpaint,
	}
}

// Settings returns the snapshot's range strings in save-file form.
func (s Snapshot) Settings() Settings {
	return Settings{Contigs: s.Contigs, InpaintSeq: s.InpaintSeq}
}

// WriteSnapshot writes the checkpoint, creating parent directories as
// needed.
func WriteSnapshot(path string, snap Snapshot) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	if err := toml.NewEncoder(fh).Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	log.Debug().Str("path", path).Msg("wrote snapshot")
	return nil
}

// ReadSnapshot reads a checkpoint and validates its range strings before
// returning it, so a caller can Apply them directly.
func ReadSnapshot(path string) (Snapshot, error) {
	var snap Snapshot
	if _, err := toml.DecodeFile(path, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	if _, err := ParseRanges(snap.Contigs); err != nil {
		return Snapshot{}, fmt.Errorf("%s: contigs: %w", path, err)
	}
	if _, err := ParseRanges(snap.InpaintSeq); err != nil {
		return Snapshot{}, fmt.Errorf("%s: inpaint_seq: %w", path, err)
	}
	return snap, nil
}
