// Package waypoint holds the editable set of turbine waypoints.
package waypoint

import "github.com/philipparndt/windpath/pkg/geometry"

// PathPoint is a uniquely identified waypoint position
type PathPoint struct {
	ID       string
	Position geometry.Vector3
}

// Positions returns the positions of points in order
func Positions(points []PathPoint) []geometry.Vector3 {
	out := make([]geometry.Vector3, len(points))
	for i, p := range points {
		out[i] = p.Position
	}
	return out
}

// IDs returns the ids of points in order
func IDs(points []PathPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.ID
	}
	return out
}
