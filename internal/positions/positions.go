// Package positions holds the process-wide list of turbine positions that
// editing sessions are seeded from and write back to.
package positions

import (
	"slices"

	"github.com/philipparndt/windpath/pkg/geometry"
)

// Store is a shared holder of raw positions
type Store interface {
	Positions() []geometry.Vector3
	SetPositions(positions []geometry.Vector3) error
}

// Memory is an in-process Store
type Memory struct {
	positions []geometry.Vector3
	writes    int
}

// NewMemory creates a Memory store holding a copy of initial
func NewMemory(initial []geometry.Vector3) *Memory {
	return &Memory{positions: slices.Clone(initial)}
}

// Positions returns a copy of the stored positions
func (m *Memory) Positions() []geometry.Vector3 {
	return slices.Clone(m.positions)
}

// SetPositions replaces the stored positions
func (m *Memory) SetPositions(positions []geometry.Vector3) error {
	m.positions = slices.Clone(positions)
	m.writes++
	return nil
}

// Writes returns how many times SetPositions was called
func (m *Memory) Writes() int {
	return m.writes
}
