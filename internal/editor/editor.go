// Package editor turns user intents into waypoint store mutations and keeps
// the displayed path consistent with the store.
//
// Paths are recomputed on explicit request and after every delete. Adds and
// moves leave the previous path in place until the next request, except that
// a path is dropped as soon as fewer than two points remain.
package editor

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/philipparndt/windpath/internal/positions"
	"github.com/philipparndt/windpath/pkg/geometry"
	"github.com/philipparndt/windpath/pkg/pathing"
	"github.com/philipparndt/windpath/pkg/viewer"
	"github.com/philipparndt/windpath/pkg/waypoint"
)

// Editor dispatches waypoint commands. It is not safe for concurrent use.
type Editor struct {
	store         *waypoint.Store
	shared        positions.Store
	logger        *slog.Logger
	placeDistance float64
	path          []waypoint.PathPoint
}

// Option configures an Editor
type Option func(*Editor)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// WithPlaceDistance sets how far in front of the camera Place puts new points
func WithPlaceDistance(distance float64) Option {
	return func(e *Editor) {
		e.placeDistance = distance
	}
}

// New creates an editor over store. Mutations are pushed to shared when it
// is non-nil.
func New(store *waypoint.Store, shared positions.Store, opts ...Option) *Editor {
	e := &Editor{
		store:         store,
		shared:        shared,
		logger:        slog.New(slog.DiscardHandler),
		placeDistance: viewer.DefaultPlaceDistance,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load re-initializes the store from positions. The shared store is not
// written, since it is usually the source of positions. Any previous path is
// discarded.
func (e *Editor) Load(positions []geometry.Vector3) error {
	if err := e.store.Initialize(positions); err != nil {
		return err
	}
	e.path = nil
	e.logger.Info("waypoints loaded", "count", e.store.Len())
	return nil
}

// LoadShared seeds the store from the shared position store
func (e *Editor) LoadShared() error {
	if e.shared == nil {
		return nil
	}
	return e.Load(e.shared.Positions())
}

// Add places a new point at pos and returns its id
func (e *Editor) Add(pos geometry.Vector3) (string, error) {
	id, err := e.store.Add(pos)
	if err != nil {
		return "", err
	}
	e.afterMutation()
	return id, e.sync()
}

// Place adds a point in front of the camera
func (e *Editor) Place(cam *viewer.Camera) (string, error) {
	return e.Add(cam.PointInFront(e.placeDistance))
}

// Move updates the position of a point. Unknown ids return
// waypoint.ErrNotFound and change nothing.
func (e *Editor) Move(id string, pos geometry.Vector3) error {
	if err := e.store.UpdatePosition(id, pos); err != nil {
		return err
	}
	e.afterMutation()
	return e.sync()
}

// Delete removes a point and recomputes the path. Unknown ids return
// waypoint.ErrNotFound and change nothing.
func (e *Editor) Delete(id string) error {
	if err := e.store.Remove(id); err != nil {
		return err
	}
	e.RecomputePath()
	return e.sync()
}

// Select sets the selected point; an empty id clears the selection
func (e *Editor) Select(id string) {
	e.store.Select(id)
}

// Selected returns the selected id, if any
func (e *Editor) Selected() (string, bool) {
	return e.store.Selected()
}

// Points returns the current points in creation order
func (e *Editor) Points() []waypoint.PathPoint {
	return e.store.List()
}

// RecomputePath rebuilds the path from the current points and returns it.
// Fewer than two points yield an empty path.
func (e *Editor) RecomputePath() []waypoint.PathPoint {
	points := e.store.List()
	if len(points) < 2 {
		e.path = nil
		e.logger.Debug("path cleared", "points", len(points))
		return nil
	}

	e.path = pathing.FindNearestNeighborPath(points)
	e.logger.Debug("path recomputed", "points", len(e.path))
	return e.Path()
}

// Path returns the last computed path, which may be stale after adds and
// moves.
func (e *Editor) Path() []waypoint.PathPoint {
	return slices.Clone(e.path)
}

// PathPositions returns the last computed path as a line strip
func (e *Editor) PathPositions() []geometry.Vector3 {
	return waypoint.Positions(e.path)
}

func (e *Editor) afterMutation() {
	if e.store.Len() < 2 && e.path != nil {
		e.path = nil
		e.logger.Debug("path cleared", "points", e.store.Len())
	}
}

func (e *Editor) sync() error {
	if e.shared == nil {
		return nil
	}
	if err := e.shared.SetPositions(e.store.Positions()); err != nil {
		e.logger.Error("failed to sync positions", "error", err)
		return fmt.Errorf("sync positions: %w", err)
	}
	return nil
}
