package waypoint

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/philipparndt/windpath/pkg/geometry"
)

// Store owns the ordered waypoint collection and the current selection.
// It is not safe for concurrent use; a single owner dispatches operations
// one at a time.
type Store struct {
	ids      IDSource
	logger   *slog.Logger
	points   []PathPoint
	selected string
}

// NewStore creates an empty store. A nil ids uses a session generator and a
// nil logger discards diagnostics.
func NewStore(ids IDSource, logger *slog.Logger) *Store {
	if ids == nil {
		ids = NewSessionIDGenerator()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{ids: ids, logger: logger}
}

// Initialize replaces the collection with one fresh point per position and
// clears the selection. Invalid input leaves the store unchanged.
func (s *Store) Initialize(positions []geometry.Vector3) error {
	for i, pos := range positions {
		if !pos.IsFinite() {
			return fmt.Errorf("%w: position %d is not finite: %v", ErrMalformedSeed, i, pos)
		}
	}

	points := make([]PathPoint, len(positions))
	for i, pos := range positions {
		points[i] = PathPoint{ID: s.ids.NextID(), Position: pos}
	}
	s.points = points
	s.selected = ""

	s.logger.Debug("waypoints initialized", "count", len(points))
	return nil
}

// Add appends a point at pos and returns its id
func (s *Store) Add(pos geometry.Vector3) (string, error) {
	if !pos.IsFinite() {
		return "", fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}

	id := s.ids.NextID()
	s.points = append(s.points, PathPoint{ID: id, Position: pos})

	s.logger.Debug("waypoint added", "id", id, "position", pos)
	return id, nil
}

// UpdatePosition moves the point with the given id, keeping its place in the
// collection.
func (s *Store) UpdatePosition(id string, pos geometry.Vector3) error {
	if !pos.IsFinite() {
		return fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Warn("update of unknown waypoint ignored", "id", id)
		return fmt.Errorf("update %q: %w", id, ErrNotFound)
	}
	s.points[i].Position = pos

	s.logger.Debug("waypoint moved", "id", id, "position", pos)
	return nil
}

// Remove deletes the point with the given id and clears the selection if it
// pointed at that point.
func (s *Store) Remove(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		s.logger.Warn("removal of unknown waypoint ignored", "id", id)
		return fmt.Errorf("remove %q: %w", id, ErrNotFound)
	}
	s.points = slices.Delete(s.points, i, i+1)
	if s.selected == id {
		s.selected = ""
	}

	s.logger.Debug("waypoint removed", "id", id, "remaining", len(s.points))
	return nil
}

// Select records the current selection. An empty id clears it. Unknown ids
// are recorded as well.
func (s *Store) Select(id string) {
	if id != "" && s.indexOf(id) < 0 {
		s.logger.Debug("selected waypoint does not exist", "id", id)
	}
	s.selected = id
}

// Selected returns the selected id, if any
func (s *Store) Selected() (string, bool) {
	return s.selected, s.selected != ""
}

// Get returns the point with the given id
func (s *Store) Get(id string) (PathPoint, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return PathPoint{}, false
	}
	return s.points[i], true
}

// List returns a copy of the points in insertion order
func (s *Store) List() []PathPoint {
	return slices.Clone(s.points)
}

// Positions returns the point positions in insertion order
func (s *Store) Positions() []geometry.Vector3 {
	return Positions(s.points)
}

// Len returns the number of points
func (s *Store) Len() int {
	return len(s.points)
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.points, func(p PathPoint) bool {
		return p.ID == id
	})
}
