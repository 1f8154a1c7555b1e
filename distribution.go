package naca

import (
	"math"
	"strconv"
	"strings"
)

// Distribution selects how chordwise sample positions are spaced.
// Valid values are Linear and HalfCosine; there is no default.
type Distribution int

const (
	// Linear spaces samples evenly along the chord.
	Linear Distribution = iota
	// HalfCosine clusters samples near the leading and trailing edges
	// where surface curvature is highest.
	HalfCosine
)

// MaxSamples is the largest number of samples a single distribution may produce.
const MaxSamples = 1 << 20

// relative slack when dividing the sampled range by the step so that
// ranges which are an exact multiple of step in decimal (1/0.1) do not
// gain an extra sample from rounding.
const countSlack = 1e-9

func (d Distribution) String() string {
	switch d {
	case Linear:
		return "linear"
	case HalfCosine:
		return "cosine"
	}
	return "Distribution(" + strconv.Itoa(int(d)) + ")"
}

// ParseDistribution returns the Distribution named by s. Accepted names are
// "linear", "cosine" and "half-cosine", case insensitive.
func ParseDistribution(s string) (Distribution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "cosine", "half-cosine", "halfcosine":
		return HalfCosine, nil
	}
	return -1, &UnsupportedDistributionError{Distribution: -1, Name: s}
}

// Samples returns the chordwise sample positions in [0,1] for the
// distribution. The first sample is 0 and the last is exactly 1.
// Positions are non-decreasing.
func (d Distribution) Samples(step float64) ([]float64, error) {
	var (
		bound float64
		pos   func(float64) float64
	)
	switch d {
	case Linear:
		bound = 1
		pos = func(u float64) float64 { return u }
	case HalfCosine:
		bound = math.Pi
		pos = func(theta float64) float64 { return 0.5 * (1 - math.Cos(theta)) }
	default:
		return nil, &UnsupportedDistributionError{Distribution: d}
	}
	n, err := intervals(bound, step)
	if err != nil {
		return nil, err
	}
	x := make([]float64, n+1)
	for i := range x[:n] {
		x[i] = pos(float64(i) * step)
	}
	// Pin the trailing edge: the last step may overshoot the bound.
	x[n] = 1
	return x, nil
}

// intervals returns the number of steps needed to cover [0,bound].
func intervals(bound, step float64) (int, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return 0, &InvalidParameterError{Param: "step", Value: step, Reason: "must be positive and finite"}
	}
	f := bound / step
	n := math.Ceil(f - f*countSlack)
	if n < 1 {
		n = 1
	}
	if n+1 > MaxSamples {
		return 0, &InvalidParameterError{Param: "step", Value: step, Reason: "too many samples"}
	}
	return int(n), nil
}

// Sampling configures the chordwise sample grid shared by every curve
// of an airfoil.
type Sampling struct {
	Distribution Distribution
	// Step is the sampling granularity: the increment in chord fraction
	// for Linear and the increment in angle (radians) for HalfCosine.
	Step float64
}

// Samples returns the sample positions described by s.
func (s Sampling) Samples() ([]float64, error) {
	return s.Distribution.Samples(s.Step)
}

func (s Sampling) validate() error {
	var bound float64
	switch s.Distribution {
	case Linear:
		bound = 1
	case HalfCosine:
		bound = math.Pi
	default:
		return &UnsupportedDistributionError{Distribution: s.Distribution}
	}
	_, err := intervals(bound, s.Step)
	return err
}
