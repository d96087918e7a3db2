// internal/replay/replay.go
package replay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
)

// Version is the recording format written by this package.
const Version = 1

var (
	ErrVersion  = errors.New("unsupported replay version")
	ErrMismatch = errors.New("replay diverged from the recorded summary")
)

// Frame is the input of one Playing tick.
type Frame struct {
	Input component.Input `msgpack:"in"`
	DtMs  float64         `msgpack:"dt"`
}

// UpgradeChoice is an upgrade picked after the given number of frames.
type UpgradeChoice struct {
	AfterFrame int                   `msgpack:"after"`
	Kind       component.UpgradeKind `msgpack:"kind"`
}

// Recording holds everything needed to re-simulate a run: the engine is deterministic
// for a given seed, loadout and input sequence.
type Recording struct {
	Version  int               `msgpack:"version"`
	Seed     int64             `msgpack:"seed"`
	Loadout  component.Loadout `msgpack:"loadout"`
	Frames   []Frame           `msgpack:"frames"`
	Upgrades []UpgradeChoice   `msgpack:"upgrades,omitempty"`
	Summary  *app.Summary      `msgpack:"summary,omitempty"`
}

// Encode serializes a recording.
func Encode(rec Recording) ([]byte, error) {
	data, err := msgpack.Marshal(&rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal replay: %w", err)
	}
	return data, nil
}

// Decode parses a recording and checks its version.
func Decode(data []byte) (Recording, error) {
	var rec Recording
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return Recording{}, fmt.Errorf("failed to unmarshal replay: %w", err)
	}
	if rec.Version != Version {
		return Recording{}, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	return rec, nil
}

// Save writes a recording next to path and renames it into place.
func Save(path string, rec Recording) error {
	data, err := Encode(rec)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create replay directory: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write replay: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to move replay into place: %w", err)
	}
	return nil
}

// Load reads a recording from disk.
func Load(path string) (Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recording{}, fmt.Errorf("failed to read replay file: %w", err)
	}
	rec, err := Decode(data)
	if err != nil {
		return Recording{}, fmt.Errorf("replay %s: %w", path, err)
	}
	return rec, nil
}
