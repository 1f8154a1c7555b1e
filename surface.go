package naca

import (
	"math"

	"github.com/soypat/naca/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Profile holds the curves of an airfoil computed from a single parameter snapshot.
type Profile struct {
	Code   string
	Upper  []r2.Vec
	Lower  []r2.Vec
	Camber []r2.Vec
}

// UpperSurfacePoints returns the upper surface from leading to trailing edge,
// scaled by the airfoil's normalization factors.
func (a *Airfoil) UpperSurfacePoints() ([]r2.Vec, error) {
	return a.curve(section.upper)
}

// LowerSurfacePoints returns the lower surface from leading to trailing edge,
// scaled by the airfoil's normalization factors.
func (a *Airfoil) LowerSurfacePoints() ([]r2.Vec, error) {
	return a.curve(section.lower)
}

// CamberLinePoints returns the camber line from leading to trailing edge,
// scaled by the airfoil's normalization factors.
func (a *Airfoil) CamberLinePoints() ([]r2.Vec, error) {
	return a.curve(section.camberPoint)
}

// Profile returns all three curves of the airfoil.
func (a *Airfoil) Profile() (Profile, error) {
	xs, err := a.sampling.Samples()
	if err != nil {
		return Profile{}, err
	}
	s := a.section()
	norm := a.Normalization()
	return Profile{
		Code:   a.NACACode(),
		Upper:  Normalize(s.sweep(xs, section.upper), norm),
		Lower:  Normalize(s.sweep(xs, section.lower), norm),
		Camber: Normalize(s.sweep(xs, section.camberPoint), norm),
	}, nil
}

// Contour returns the closed outline of the airfoil. See Profile.Contour.
func (a *Airfoil) Contour() ([]r2.Vec, error) {
	p, err := a.Profile()
	if err != nil {
		return nil, err
	}
	return p.Contour(), nil
}

// Contour returns the outline running from the upper trailing edge over the
// upper surface to the leading edge and back along the lower surface. The
// first point is repeated at the end so the loop is explicitly closed.
func (p Profile) Contour() []r2.Vec {
	if len(p.Upper) == 0 || len(p.Lower) == 0 {
		return nil
	}
	loop := make([]r2.Vec, 0, len(p.Upper)+len(p.Lower))
	loop = append(loop, d2.Set(p.Upper).Reverse()...)
	loop = append(loop, p.Lower[1:]...) // leading edge already present.
	return append(loop, loop[0])
}

func (a *Airfoil) curve(point func(section, float64) r2.Vec) ([]r2.Vec, error) {
	xs, err := a.sampling.Samples()
	if err != nil {
		return nil, err
	}
	return Normalize(a.section().sweep(xs, point), a.norm), nil
}

// sweep evaluates point at every sample mapped onto the chord.
func (s section) sweep(xs []float64, point func(section, float64) r2.Vec) []r2.Vec {
	pts := make([]r2.Vec, len(xs))
	for i, u := range xs {
		pts[i] = point(s, u*s.c)
	}
	return pts
}

func (s section) upper(x float64) r2.Vec {
	yt, yc, theta := s.thickness(x), s.camber(x), s.slopeAngle(x)
	return r2.Vec{
		X: x - yt*math.Sin(theta),
		Y: yc + yt*math.Cos(theta),
	}
}

func (s section) lower(x float64) r2.Vec {
	yt, yc, theta := s.thickness(x), s.camber(x), s.slopeAngle(x)
	return r2.Vec{
		X: x + yt*math.Sin(theta),
		Y: yc - yt*math.Cos(theta),
	}
}

func (s section) camberPoint(x float64) r2.Vec {
	return r2.Vec{X: x, Y: s.camber(x)}
}

// Normalize scales every point element-wise by factors and returns the result
// in a new slice. If factors is nil points is returned unchanged.
func Normalize(points []r2.Vec, factors *r2.Vec) []r2.Vec {
	if factors == nil {
		return points
	}
	return d2.Set(points).Scale(*factors)
}
