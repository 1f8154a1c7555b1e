package naca

import (
	"errors"
	"testing"
)

func TestParseCode(t *testing.T) {
	for _, test := range []struct {
		code    string
		m, p, t float64
	}{
		{"2412", 2, 4, 12},
		{"0012", 0, 0, 12},
		{"4415", 4, 4, 15},
		{"9999", 9, 9, 99},
	} {
		a, err := ParseCode(test.code, linear)
		if err != nil {
			t.Fatalf("%s: %v", test.code, err)
		}
		if a.Camber() != test.m || a.CamberDistance() != test.p || a.Thickness() != test.t {
			t.Errorf("%s: got m=%g p=%g t=%g", test.code, a.Camber(), a.CamberDistance(), a.Thickness())
		}
		if got := a.NACACode(); got != test.code {
			t.Errorf("%s: round trip got %q", test.code, got)
		}
	}
}

func TestParseCodeErrors(t *testing.T) {
	for _, code := range []string{"", "241", "24120", "24a2", "-412", "２４１"} {
		_, err := ParseCode(code, linear)
		var perr *InvalidParameterError
		if !errors.As(err, &perr) || perr.Param != "code" {
			t.Errorf("%q: expected code InvalidParameterError, got %v", code, err)
		}
	}
	if _, err := ParseCode("2412", Sampling{Distribution: Distribution(9), Step: 0.1}); err == nil {
		t.Error("expected sampling error")
	}
}
