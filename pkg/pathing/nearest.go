// Package pathing orders waypoints into a visiting sequence.
package pathing

import (
	"math"
	"slices"

	"github.com/philipparndt/windpath/pkg/waypoint"
)

// FindNearestNeighborPath orders points with the greedy nearest-neighbor
// heuristic. The tour starts at points[0] and always steps to the closest
// unvisited point; on equal distances the earliest point in unvisited order
// wins, so the result is deterministic for a given input order.
//
// The result is a new slice holding every input point exactly once. The
// input is not modified. Runs in O(n²) distance evaluations.
func FindNearestNeighborPath(points []waypoint.PathPoint) []waypoint.PathPoint {
	if len(points) == 0 {
		return []waypoint.PathPoint{}
	}
	if len(points) == 1 {
		return []waypoint.PathPoint{points[0]}
	}

	unvisited := slices.Clone(points[1:])
	path := make([]waypoint.PathPoint, 0, len(points))

	current := points[0]
	path = append(path, current)

	for len(unvisited) > 0 {
		nearestIndex := -1
		minDistance := math.Inf(1)

		for i, candidate := range unvisited {
			distance := current.Position.Distance(candidate.Position)
			if distance < minDistance {
				minDistance = distance
				nearestIndex = i
			}
		}

		// All distances overflowed to +Inf.
		if nearestIndex < 0 {
			nearestIndex = 0
		}

		current = unvisited[nearestIndex]
		path = append(path, current)
		unvisited = slices.Delete(unvisited, nearestIndex, nearestIndex+1)
	}

	return path
}
