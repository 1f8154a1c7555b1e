package d2

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// Bounds returns the smallest box containing every point of the set.
// An empty set yields the zero Box.
func (a Set) Bounds() Box {
	if len(a) == 0 {
		return Box{}
	}
	return Box{Min: a.Min(), Max: a.Max()}
}

// NewBox2 creates a 2d box with a given center and size.
func NewBox2(center, size r2.Vec) Box {
	half := r2.Scale(0.5, size)
	return Box{r2.Sub(center, half), r2.Add(center, half)}
}

// Size returns the size of a 2d box.
func (a Box) Size() r2.Vec {
	return r2.Sub(a.Max, a.Min)
}

// Center returns the center of a 2d box.
func (a Box) Center() r2.Vec {
	return r2.Add(a.Min, r2.Scale(0.5, a.Size()))
}

// Enlarge returns a new 2d box enlarged by a size vector.
func (a Box) Enlarge(v r2.Vec) Box {
	v = r2.Scale(0.5, v)
	return Box{r2.Sub(a.Min, v), r2.Add(a.Max, v)}
}

// FitAspect grows the box about its center along one axis so that
// width/height equals aspect. The box is never shrunk.
func (a Box) FitAspect(aspect float64) Box {
	size := a.Size()
	switch {
	case !(aspect > 0) || (size.X == 0 && size.Y == 0):
		return a
	case size.Y == 0 || size.X/size.Y > aspect:
		size.Y = size.X / aspect
	default:
		size.X = size.Y * aspect
	}
	return NewBox2(a.Center(), size)
}
