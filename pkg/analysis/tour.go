package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/windpath/pkg/geometry"
	"github.com/philipparndt/windpath/pkg/waypoint"
)

// Leg is a single step of a tour
type Leg struct {
	FromID string
	ToID   string
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
}

// TourResult contains measurements of an ordered tour
type TourResult struct {
	PointCount  int
	Legs        []Leg
	TotalLength float64
	MinLeg      float64
	MaxLeg      float64
	AvgLeg      float64
	BoundingBox geometry.BoundingBox
	HasBounds   bool
}

// AnalyzeTour measures the legs of an ordered tour. The tour is open: there
// is no leg back to the first point.
func AnalyzeTour(path []waypoint.PathPoint) *TourResult {
	result := &TourResult{
		PointCount: len(path),
		Legs:       make([]Leg, 0, max(len(path)-1, 0)),
	}
	result.BoundingBox, result.HasBounds = geometry.BoundsOf(waypoint.Positions(path))

	minLength := math.MaxFloat64
	maxLength := 0.0

	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		length := from.Position.Distance(to.Position)

		result.Legs = append(result.Legs, Leg{
			FromID: from.ID,
			ToID:   to.ID,
			Start:  from.Position,
			End:    to.Position,
			Length: length,
		})

		result.TotalLength += length
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
	}

	if len(result.Legs) > 0 {
		result.MinLeg = minLength
		result.MaxLeg = maxLength
		result.AvgLeg = result.TotalLength / float64(len(result.Legs))
	}

	return result
}

// PathLength returns the summed leg length of an ordered sequence of positions
func PathLength(positions []geometry.Vector3) float64 {
	total := 0.0
	for i := 1; i < len(positions); i++ {
		total += positions[i-1].Distance(positions[i])
	}
	return total
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.3f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatVectorShort formats a 3D vector with one decimal per axis
func FormatVectorShort(v geometry.Vector3) string {
	return fmt.Sprintf("X: %.1f, Y: %.1f, Z: %.1f", v.X, v.Y, v.Z)
}
