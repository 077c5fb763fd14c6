package geometry

// BoundingBox is the axis-aligned extent of a set of points
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// BoundsOf returns the bounding box of points.
// The second result is false when points is empty.
func BoundsOf(points []Vector3) (BoundingBox, bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}

	b := BoundingBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b, true
}

// Size returns the extent along each axis
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box
func (b BoundingBox) Center() Vector3 {
	return b.Min.Add(b.Size().Mul(0.5))
}

// Diagonal returns the distance between the two extreme corners
func (b BoundingBox) Diagonal() float64 {
	return b.Min.Distance(b.Max)
}
