package naca

import "math"

// Half-thickness polynomial coefficients of the NACA 4-digit series.
// With a4 = 0.1015 the trailing edge keeps a small finite thickness.
const (
	a0 = 0.2969
	a1 = 0.1260
	a2 = 0.3516
	a3 = 0.2843
	a4 = 0.1015
)

// section is an immutable snapshot of airfoil parameters in fractional form.
type section struct {
	m float64 // m/100
	p float64 // p/10
	t float64 // t/100
	c float64
}

func (a *Airfoil) section() section {
	return section{m: a.m / 100, p: a.p / 10, t: a.t / 100, c: a.c}
}

// flat reports whether the camber line lies on the chord. With p = 0 there
// is no location of maximum camber inside the chord so the section is
// treated as symmetric.
func (s section) flat() bool { return s.m == 0 || s.p == 0 }

// fore reports whether x lies ahead of (or on) the point of maximum camber.
func (s section) fore(x float64) bool { return x <= s.p*s.c }

func (s section) camber(x float64) float64 {
	switch {
	case s.flat():
		return 0
	case s.fore(x):
		return s.camberFore(x)
	}
	return s.camberAft(x)
}

func (s section) camberFore(x float64) float64 {
	return s.m / (s.p * s.p) * x * (2*s.p - x/s.c)
}

func (s section) camberAft(x float64) float64 {
	q := 1 - s.p
	return s.m / (q * q) * (s.c - x) * (1 + x/s.c - 2*s.p)
}

// slopeAngle returns atan(dyc/dx).
func (s section) slopeAngle(x float64) float64 {
	switch {
	case s.flat():
		return 0
	case s.fore(x):
		return math.Atan(s.gradientFore(x))
	}
	return math.Atan(s.gradientAft(x))
}

func (s section) gradientFore(x float64) float64 {
	return 2 * s.m / (s.p * s.p) * (s.p - x/s.c)
}

func (s section) gradientAft(x float64) float64 {
	q := 1 - s.p
	return 2 * s.m / (q * q) * (s.p - x/s.c)
}

// thickness returns the half thickness yt at x. Negative x yields NaN.
func (s section) thickness(x float64) float64 {
	u := x / s.c
	u2 := u * u
	poly := a0*math.Sqrt(u) - a1*u - a2*u2 + a3*u2*u - a4*u2*u2
	return s.t / 0.2 * s.c * poly
}

// CamberAt returns the camber line height yc at chordwise position x in [0, chord].
func (a *Airfoil) CamberAt(x float64) float64 { return a.section().camber(x) }

// SlopeAngle returns the angle in radians of the camber line tangent at x.
func (a *Airfoil) SlopeAngle(x float64) float64 { return a.section().slopeAngle(x) }

// ThicknessAt returns the half thickness yt at chordwise position x in [0, chord].
func (a *Airfoil) ThicknessAt(x float64) float64 { return a.section().thickness(x) }
