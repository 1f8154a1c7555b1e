package naca

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

var (
	linear = Sampling{Distribution: Linear, Step: 0.1}
	cosine = Sampling{Distribution: HalfCosine, Step: 0.1}
)

func newAirfoil(t testing.TB, s Sampling) *Airfoil {
	t.Helper()
	a, err := New(s)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestDefaults(t *testing.T) {
	a := newAirfoil(t, linear)
	if got := a.NACACode(); got != "2415" {
		t.Errorf("default code mismatch. got %q. want %q", got, "2415")
	}
	if a.Camber() != 2 || a.CamberDistance() != 4 || a.Thickness() != 15 || a.Chord() != 1 {
		t.Errorf("unexpected default parameters m=%g p=%g t=%g c=%g", a.Camber(), a.CamberDistance(), a.Thickness(), a.Chord())
	}
	if got := a.Normalization(); got == nil || *got != DefaultNormalization {
		t.Errorf("default normalization mismatch. got %v. want %v", got, DefaultNormalization)
	}
	if a.Sampling() != linear {
		t.Errorf("sampling mismatch. got %+v", a.Sampling())
	}
}

func TestSetters(t *testing.T) {
	a := newAirfoil(t, linear)
	setters := []struct {
		name string
		set  func(float64) error
		get  func() float64
	}{
		{"camber", a.SetCamber, a.Camber},
		{"position", a.SetCamberDistance, a.CamberDistance},
		{"thickness", a.SetThickness, a.Thickness},
	}
	for _, s := range setters {
		for _, bad := range []float64{-0.001, 100.5, 150, math.NaN(), math.Inf(1)} {
			before := s.get()
			err := s.set(bad)
			var perr *InvalidParameterError
			if !errors.As(err, &perr) {
				t.Fatalf("%s(%g): expected InvalidParameterError, got %v", s.name, bad, err)
			}
			if perr.Param != s.name {
				t.Errorf("%s(%g): param mismatch. got %q", s.name, bad, perr.Param)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("%s(%g): error does not match ErrInvalidInput", s.name, bad)
			}
			if got := s.get(); got != before && !math.IsNaN(bad) {
				t.Errorf("%s(%g): failed setter modified value to %g", s.name, bad, got)
			}
		}
		for _, good := range []float64{0, 15, 100} {
			if err := s.set(good); err != nil {
				t.Errorf("%s(%g): unexpected error %v", s.name, good, err)
			}
			if got := s.get(); got != good {
				t.Errorf("%s: got %g. want %g", s.name, got, good)
			}
		}
	}
}

func TestSetThicknessAffectsGeometry(t *testing.T) {
	a := newAirfoil(t, linear)
	if err := a.SetThickness(150); err == nil {
		t.Fatal("expected error setting thickness to 150")
	}
	before := a.ThicknessAt(0.3)
	if err := a.SetThickness(30); err != nil {
		t.Fatal(err)
	}
	after := a.ThicknessAt(0.3)
	if math.Abs(after-2*before) > 1e-12 {
		t.Errorf("doubling thickness should double yt. got %g. want %g", after, 2*before)
	}
}

func TestSetChord(t *testing.T) {
	a := newAirfoil(t, linear)
	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if err := a.SetChord(bad); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("SetChord(%g): expected invalid input error, got %v", bad, err)
		}
	}
	if err := a.SetChord(2.5); err != nil {
		t.Fatal(err)
	}
	if a.Chord() != 2.5 {
		t.Errorf("chord mismatch. got %g", a.Chord())
	}
}

func TestSetSampling(t *testing.T) {
	a := newAirfoil(t, linear)
	err := a.SetSampling(Sampling{Distribution: Distribution(3), Step: 0.1})
	var derr *UnsupportedDistributionError
	if !errors.As(err, &derr) {
		t.Fatalf("expected UnsupportedDistributionError, got %v", err)
	}
	if err := a.SetSampling(Sampling{Distribution: HalfCosine, Step: 0}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected invalid step error, got %v", err)
	}
	if a.Sampling() != linear {
		t.Error("failed SetSampling modified sampling")
	}
	if err := a.SetSampling(cosine); err != nil {
		t.Fatal(err)
	}
	if a.Sampling() != cosine {
		t.Error("sampling not updated")
	}
}

func TestNewRejectsBadSampling(t *testing.T) {
	if _, err := New(Sampling{Distribution: Distribution(2), Step: 0.1}); err == nil {
		t.Error("expected error for unsupported distribution")
	}
	if _, err := New(Sampling{Distribution: Linear}); err == nil {
		t.Error("expected error for zero step")
	}
}

func TestNormalizationPerInstance(t *testing.T) {
	a := newAirfoil(t, linear)
	b := newAirfoil(t, linear)
	f := r2.Vec{X: 2, Y: 3}
	a.SetNormalization(&f)
	f.X = 100 // must not alias.
	if got := a.Normalization(); *got != (r2.Vec{X: 2, Y: 3}) {
		t.Errorf("normalization aliased caller value. got %v", *got)
	}
	if got := b.Normalization(); *got != DefaultNormalization {
		t.Errorf("normalization shared between instances. got %v", *got)
	}
	a.Normalization().X = 42
	if got := a.Normalization(); got.X != 2 {
		t.Errorf("Normalization returned internal pointer")
	}
	a.SetNormalization(nil)
	if a.Normalization() != nil {
		t.Error("expected nil normalization")
	}
	if DefaultNormalization != (r2.Vec{X: 500, Y: 500}) {
		t.Error("DefaultNormalization modified")
	}
}

func TestNACACode(t *testing.T) {
	a := newAirfoil(t, linear)
	for _, test := range []struct {
		m, p, t float64
		want    string
	}{
		{2, 4, 15, "2415"},
		{0, 0, 12, "0012"},
		{4, 4, 8, "448"},
		{2.5, 4, 12, "2.5412"},
		{10, 10, 100, "1010100"},
	} {
		if err := a.SetCamber(test.m); err != nil {
			t.Fatal(err)
		}
		if err := a.SetCamberDistance(test.p); err != nil {
			t.Fatal(err)
		}
		if err := a.SetThickness(test.t); err != nil {
			t.Fatal(err)
		}
		if got := a.NACACode(); got != test.want {
			t.Errorf("code mismatch. got %q. want %q", got, test.want)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	for _, test := range []struct {
		err  error
		want string
	}{
		{percentErr("thickness", 150), "naca: invalid thickness 150: outside [0,100]"},
		{&InvalidParameterError{Param: "code", Input: "24a2", Reason: "non-digit at index 2"}, `naca: invalid code "24a2": non-digit at index 2`},
		{&InvalidParameterError{Param: "step", Value: -1}, "naca: invalid step -1"},
		{&UnsupportedDistributionError{Distribution: 5}, "naca: unsupported distribution 5"},
		{&UnsupportedDistributionError{Distribution: -1, Name: "spline"}, `naca: unsupported distribution "spline"`},
	} {
		if got := test.err.Error(); got != test.want {
			t.Errorf("message mismatch. got %q. want %q", got, test.want)
		}
	}
}
