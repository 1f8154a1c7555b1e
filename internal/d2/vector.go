package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// MulElem returns the element-wise product of two vectors.
func MulElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{
		X: a.X * b.X,
		Y: a.Y * b.Y,
	}
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Set is an ordered sequence of points.
type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Scale returns a new set with every point multiplied element-wise by k.
func (a Set) Scale(k r2.Vec) Set {
	s := make(Set, len(a))
	for i, v := range a {
		s[i] = MulElem(v, k)
	}
	return s
}

// Reverse returns a new set with the order of the points reversed.
func (a Set) Reverse() Set {
	s := make(Set, len(a))
	for i, v := range a {
		s[len(a)-1-i] = v
	}
	return s
}

// Ys returns the Y components of the set.
func (a Set) Ys() []float64 {
	y := make([]float64, len(a))
	for i, v := range a {
		y[i] = v.Y
	}
	return y
}
