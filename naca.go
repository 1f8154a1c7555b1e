// Package naca computes the surface geometry of NACA 4-digit airfoils.
//
// An Airfoil holds the four shape parameters (maximum camber, camber
// location, maximum thickness and chord) and produces the camber line and
// the upper and lower surfaces as ordered point sequences. Generation is
// pure: every call works on a snapshot of the parameters and returns
// freshly allocated slices.
package naca

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultNormalization is the scale applied to generated points
// by a newly created Airfoil.
var DefaultNormalization = r2.Vec{X: 500, Y: 500}

// Airfoil is a NACA 4-digit airfoil. The zero value is not usable; create
// one with New or ParseCode. An Airfoil must not be mutated concurrently
// with point generation.
type Airfoil struct {
	m float64 // maximum camber, percent of chord.
	p float64 // camber location, tenths of chord.
	t float64 // maximum thickness, percent of chord.
	c float64 // chord length.

	sampling Sampling
	norm     *r2.Vec // nil disables normalization.
}

// New returns a NACA 2415 airfoil of unit chord sampled as described by s.
// Generated points are scaled by DefaultNormalization.
func New(s Sampling) (*Airfoil, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	norm := DefaultNormalization
	return &Airfoil{
		m:        2,
		p:        4,
		t:        15,
		c:        1,
		sampling: s,
		norm:     &norm,
	}, nil
}

// SetCamber sets the maximum camber as a percentage of the chord.
func (a *Airfoil) SetCamber(m float64) error {
	if !inPercentRange(m) {
		return percentErr("camber", m)
	}
	a.m = m
	return nil
}

// SetCamberDistance sets the location of maximum camber in tenths of the chord.
func (a *Airfoil) SetCamberDistance(p float64) error {
	if !inPercentRange(p) {
		return percentErr("position", p)
	}
	a.p = p
	return nil
}

// SetThickness sets the maximum thickness as a percentage of the chord.
func (a *Airfoil) SetThickness(t float64) error {
	if !inPercentRange(t) {
		return percentErr("thickness", t)
	}
	a.t = t
	return nil
}

// SetChord sets the chord length. c must be positive and finite.
func (a *Airfoil) SetChord(c float64) error {
	if !(c > 0) || math.IsInf(c, 1) {
		return &InvalidParameterError{Param: "chord", Value: c, Reason: "must be positive and finite"}
	}
	a.c = c
	return nil
}

// SetSampling replaces the chordwise sample grid.
func (a *Airfoil) SetSampling(s Sampling) error {
	if err := s.validate(); err != nil {
		return err
	}
	a.sampling = s
	return nil
}

// SetNormalization sets the scale factors applied to generated points.
// A nil factors disables normalization. The value is copied.
func (a *Airfoil) SetNormalization(factors *r2.Vec) {
	if factors == nil {
		a.norm = nil
		return
	}
	f := *factors
	a.norm = &f
}

func (a *Airfoil) Camber() float64         { return a.m }
func (a *Airfoil) CamberDistance() float64 { return a.p }
func (a *Airfoil) Thickness() float64      { return a.t }
func (a *Airfoil) Chord() float64          { return a.c }
func (a *Airfoil) Sampling() Sampling      { return a.sampling }

// Normalization returns a copy of the normalization factors or nil if
// normalization is disabled.
func (a *Airfoil) Normalization() *r2.Vec {
	if a.norm == nil {
		return nil
	}
	f := *a.norm
	return &f
}

// NACACode returns the concatenation of camber, camber location and
// thickness in shortest decimal form without zero padding,
// i.e. "2415" for the default airfoil.
func (a *Airfoil) NACACode() string {
	return formatParam(a.m) + formatParam(a.p) + formatParam(a.t)
}

// clone returns an independent copy of a.
func (a *Airfoil) clone() *Airfoil {
	b := *a
	b.norm = a.Normalization()
	return &b
}

func formatParam(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func inPercentRange(v float64) bool { return v >= 0 && v <= 100 }
