package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box.
// A new box holds the +Inf/-Inf sentinel until the first point is added.
type BoundingBox struct {
	Min Vector3 `json:"min"`
	Max Vector3 `json:"max"`
}

// NewBoundingBox creates a new, empty bounding box
func NewBoundingBox() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{
		Min: Vector3{X: inf, Y: inf, Z: inf},
		Max: Vector3{X: -inf, Y: -inf, Z: -inf},
	}
}

// Extend expands the bounding box to include a point.
// Points with a NaN or infinite component are ignored and reported as false.
func (b *BoundingBox) Extend(point Vector3) bool {
	if !point.IsFinite() {
		return false
	}
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
	return true
}

// Empty reports whether no point has been added yet
func (b BoundingBox) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the dimensions of the bounding box; an empty box has size zero
func (b BoundingBox) Size() Vector3 {
	if b.Empty() {
		return Vector3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	if b.Empty() {
		return Vector3{}
	}
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Volume returns the volume of the bounding box
func (b BoundingBox) Volume() float64 {
	return b.Size().Product()
}
