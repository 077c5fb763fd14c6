package viewer

import (
	"math"

	"github.com/philipparndt/windpath/pkg/geometry"
)

// DefaultPlaceDistance is how far in front of the camera new points are placed
const DefaultPlaceDistance = 5.0

// Camera is the viewpoint new waypoints are placed relative to
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
}

// DefaultCamera returns the start-up camera: above and behind the origin,
// looking at it.
func DefaultCamera() *Camera {
	return &Camera{
		Position: geometry.NewVector3(0, 10, 20),
		Target:   geometry.NewVector3(0, 0, 0),
		Up:       geometry.NewVector3(0, 1, 0),
	}
}

// NewCamera creates a camera positioned to view a bounding box
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := bbox.Center()
	size := bbox.Size()
	distance := math.Max(size.X, math.Max(size.Y, size.Z)) * 2.0
	if distance == 0 {
		distance = DefaultPlaceDistance * 2
	}

	return &Camera{
		Position: center.Add(geometry.NewVector3(0, 0, distance)),
		Target:   center,
		Up:       geometry.NewVector3(0, 1, 0),
	}
}

// Forward returns the unit view direction. It is zero when the camera sits
// on its target.
func (c *Camera) Forward() geometry.Vector3 {
	return c.Target.Sub(c.Position).Normalize()
}

// PointInFront returns the point distance units along the view direction
func (c *Camera) PointInFront(distance float64) geometry.Vector3 {
	return c.Position.Add(c.Forward().Mul(distance))
}

// MoveTo moves the camera and keeps its target
func (c *Camera) MoveTo(position geometry.Vector3) {
	c.Position = position
}

// LookAt points the camera at target
func (c *Camera) LookAt(target geometry.Vector3) {
	c.Target = target
}
