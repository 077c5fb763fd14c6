// Package seed reads and writes turbine position files.
//
// A seed file is a JSON array of records, each carrying a "position" field
// with exactly three numbers:
//
//	[{"position": [0, 0, 0]}, {"name": "T2", "position": [12.5, 0, -4]}]
//
// Fields other than "position" are ignored.
package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/windpath/pkg/geometry"
	"github.com/philipparndt/windpath/pkg/waypoint"
)

type record struct {
	Position json.RawMessage `json:"position"`
}

type encodedRecord struct {
	Position [3]float64 `json:"position"`
}

// Parse decodes a seed document. Any malformed record fails the whole parse
// with an error wrapping waypoint.ErrMalformedSeed.
func Parse(r io.Reader) ([]geometry.Vector3, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes decodes a seed document held in memory
func ParseBytes(data []byte) ([]geometry.Vector3, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil || records == nil {
		if err == nil {
			err = fmt.Errorf("document is null")
		}
		return nil, fmt.Errorf("%w: expected a JSON array of records: %v", waypoint.ErrMalformedSeed, err)
	}

	positions := make([]geometry.Vector3, 0, len(records))
	for i, raw := range records {
		pos, err := parseRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", waypoint.ErrMalformedSeed, i, err)
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

func parseRecord(raw json.RawMessage) (geometry.Vector3, error) {
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return geometry.Vector3{}, fmt.Errorf("not an object: %v", err)
	}

	trimmed := bytes.TrimSpace(rec.Position)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return geometry.Vector3{}, fmt.Errorf("missing position")
	}

	var nums []*float64
	if err := json.Unmarshal(trimmed, &nums); err != nil {
		return geometry.Vector3{}, fmt.Errorf("position is not an array of numbers: %v", err)
	}

	components := make([]float64, len(nums))
	for i, c := range nums {
		if c == nil {
			return geometry.Vector3{}, fmt.Errorf("position component %d is null", i)
		}
		components[i] = *c
	}

	pos, err := geometry.FromSlice(components)
	if err != nil {
		return geometry.Vector3{}, fmt.Errorf("position: %v", err)
	}
	if !pos.IsFinite() {
		return geometry.Vector3{}, fmt.Errorf("position is not finite")
	}
	return pos, nil
}

// ParseFile reads and decodes a seed file
func ParseFile(path string) ([]geometry.Vector3, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	positions, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return positions, nil
}

// Marshal encodes positions in the seed format
func Marshal(positions []geometry.Vector3) ([]byte, error) {
	records := make([]encodedRecord, len(positions))
	for i, p := range positions {
		records[i] = encodedRecord{Position: p.Array()}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal positions: %w", err)
	}
	return append(data, '\n'), nil
}

// Encode writes positions in the seed format
func Encode(w io.Writer, positions []geometry.Vector3) error {
	data, err := Marshal(positions)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
