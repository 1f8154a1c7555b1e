package naca

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidInput is matched by every error returned for bad caller input.
var ErrInvalidInput = errors.New("naca: invalid input")

// InvalidParameterError is returned when a shape or sampling parameter
// lies outside its valid range.
type InvalidParameterError struct {
	Param  string  // parameter name: "camber", "position", "thickness", "chord", "step", "code" or "airfoil".
	Value  float64 // offending numeric value.
	Input  string  // offending text input, if any. For "airfoil" it is the batch index.
	Reason string
}

func (e *InvalidParameterError) Error() string {
	v := strconv.FormatFloat(e.Value, 'g', -1, 64)
	if e.Input != "" {
		v = strconv.Quote(e.Input)
	}
	if e.Reason == "" {
		return fmt.Sprintf("naca: invalid %s %s", e.Param, v)
	}
	return fmt.Sprintf("naca: invalid %s %s: %s", e.Param, v, e.Reason)
}

// Is reports whether target is ErrInvalidInput.
func (e *InvalidParameterError) Is(target error) bool { return target == ErrInvalidInput }

// UnsupportedDistributionError is returned when a Distribution is neither
// Linear nor HalfCosine.
type UnsupportedDistributionError struct {
	Distribution Distribution
	Name         string // set when parsed from text.
}

func (e *UnsupportedDistributionError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("naca: unsupported distribution %q", e.Name)
	}
	return fmt.Sprintf("naca: unsupported distribution %d", int(e.Distribution))
}

// Is reports whether target is ErrInvalidInput.
func (e *UnsupportedDistributionError) Is(target error) bool { return target == ErrInvalidInput }

func percentErr(param string, v float64) error {
	return &InvalidParameterError{Param: param, Value: v, Reason: "outside [0,100]"}
}
