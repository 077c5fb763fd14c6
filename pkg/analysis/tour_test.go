package analysis

import (
	"testing"

	"github.com/philipparndt/windpath/pkg/geometry"
	"github.com/philipparndt/windpath/pkg/waypoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeTour(t *testing.T) {
	path := []waypoint.PathPoint{
		{ID: "a", Position: geometry.NewVector3(0, 0, 0)},
		{ID: "b", Position: geometry.NewVector3(3, 4, 0)},
		{ID: "c", Position: geometry.NewVector3(3, 4, 1)},
	}

	result := AnalyzeTour(path)

	assert.Equal(t, 3, result.PointCount)
	require.Len(t, result.Legs, 2)
	assert.Equal(t, "a", result.Legs[0].FromID)
	assert.Equal(t, "b", result.Legs[0].ToID)
	assert.InDelta(t, 5.0, result.Legs[0].Length, 1e-10)
	assert.InDelta(t, 1.0, result.Legs[1].Length, 1e-10)

	assert.InDelta(t, 6.0, result.TotalLength, 1e-10)
	assert.InDelta(t, 1.0, result.MinLeg, 1e-10)
	assert.InDelta(t, 5.0, result.MaxLeg, 1e-10)
	assert.InDelta(t, 3.0, result.AvgLeg, 1e-10)

	require.True(t, result.HasBounds)
	assert.Equal(t, geometry.NewVector3(3, 4, 1), result.BoundingBox.Max)
}

func TestAnalyzeTour_Degenerate(t *testing.T) {
	for _, path := range [][]waypoint.PathPoint{
		nil,
		{{ID: "solo", Position: geometry.NewVector3(1, 1, 1)}},
	} {
		result := AnalyzeTour(path)
		assert.Empty(t, result.Legs)
		assert.Zero(t, result.TotalLength)
		assert.Zero(t, result.MinLeg)
		assert.Equal(t, len(path) > 0, result.HasBounds)
	}
}

func TestPathLength(t *testing.T) {
	positions := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0, 0, 2),
		geometry.NewVector3(0, 3, 2),
	}
	assert.InDelta(t, 5.0, PathLength(positions), 1e-10)
	assert.Zero(t, PathLength(positions[:1]))
}

func TestFormatVector(t *testing.T) {
	v := geometry.NewVector3(1.26, -2, 3.04)
	assert.Equal(t, "(1.260000, -2.000000, 3.040000)", FormatVector(v))
	assert.Equal(t, "X: 1.3, Y: -2.0, Z: 3.0", FormatVectorShort(v))
	assert.Equal(t, "2.500 m", FormatMeasurement(2.5, "m"))
	assert.Equal(t, "2.500 units", FormatMeasurement(2.5, ""))
}
