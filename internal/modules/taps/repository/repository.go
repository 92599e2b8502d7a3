package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"kegerator-server/internal/modules/taps/types"
)

var (
	// ErrReadingsIO is wrapped by errors opening, reading or writing the data file.
	ErrReadingsIO = errors.New("tap readings io")
	// ErrReadingsParse is wrapped by errors decoding the data file.
	ErrReadingsParse = errors.New("tap readings parse")
)

type TapRepository interface {
	LoadReadings() (types.Readings, error)
	ReplaceReadings(readings types.Readings) error
}

type repositoryImpl struct {
	path string
}

func NewRepository(path string) TapRepository {
	return &repositoryImpl{path: path}
}

// LoadReadings reads and decodes the data file. Nothing is cached: every call
// hits the file system.
func (r *repositoryImpl) LoadReadings() (types.Readings, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return types.Readings{}, fmt.Errorf("%w: %w", ErrReadingsIO, err)
	}
	return DecodeReadings(data)
}

// ReplaceReadings writes readings to a temp file next to the data file and
// renames it into place, so concurrent readers see either the old or the new document.
func (r *repositoryImpl) ReplaceReadings(readings types.Readings) error {
	data, err := json.MarshalIndent(readings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode readings: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %w", ErrReadingsIO, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tap-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temp: %w", ErrReadingsIO, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("%w: write temp: %w", ErrReadingsIO, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("%w: close temp: %w", ErrReadingsIO, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("%w: chmod temp: %w", ErrReadingsIO, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		cleanup()
		return fmt.Errorf("%w: rename: %w", ErrReadingsIO, err)
	}
	return nil
}

// wireReading mirrors types.Reading with pointers so absent and null fields
// can be told apart from zero values.
type wireReading struct {
	Name  *string  `json:"name"`
	State *float64 `json:"state"`
}

type wireReadings struct {
	TapOne   *wireReading `json:"tap_one"`
	TapTwo   *wireReading `json:"tap_two"`
	TapThree *wireReading `json:"tap_three"`
}

// DecodeReadings decodes a tap document. Every tap and every field must be
// present and non-null; unknown keys are ignored.
func DecodeReadings(data []byte) (types.Readings, error) {
	var w wireReadings
	if err := json.Unmarshal(data, &w); err != nil {
		return types.Readings{}, fmt.Errorf("%w: %w", ErrReadingsParse, err)
	}

	one, err := w.TapOne.toReading("tap_one")
	if err != nil {
		return types.Readings{}, err
	}
	two, err := w.TapTwo.toReading("tap_two")
	if err != nil {
		return types.Readings{}, err
	}
	three, err := w.TapThree.toReading("tap_three")
	if err != nil {
		return types.Readings{}, err
	}

	return types.Readings{TapOne: one, TapTwo: two, TapThree: three}, nil
}

func (w *wireReading) toReading(slot string) (types.Reading, error) {
	if w == nil {
		return types.Reading{}, fmt.Errorf("%w: missing field %q", ErrReadingsParse, slot)
	}
	if w.Name == nil {
		return types.Reading{}, fmt.Errorf("%w: missing field %q", ErrReadingsParse, slot+".name")
	}
	if w.State == nil {
		return types.Reading{}, fmt.Errorf("%w: missing field %q", ErrReadingsParse, slot+".state")
	}
	return types.Reading{Name: *w.Name, State: *w.State}, nil
}
