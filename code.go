package naca

import "strconv"

// ParseCode returns the airfoil described by a 4-digit NACA designation
// such as "2412" or "0012": the first digit is the maximum camber, the
// second the camber location and the last two the thickness.
// The chord is 1 and normalization is DefaultNormalization.
func ParseCode(code string, s Sampling) (*Airfoil, error) {
	if len(code) != 4 {
		return nil, &InvalidParameterError{Param: "code", Input: code, Reason: "want 4 digits"}
	}
	var d [4]float64
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c < '0' || c > '9' {
			return nil, &InvalidParameterError{Param: "code", Input: code, Reason: "non-digit at index " + strconv.Itoa(i)}
		}
		d[i] = float64(c - '0')
	}
	a, err := New(s)
	if err != nil {
		return nil, err
	}
	a.m = d[0]
	a.p = d[1]
	a.t = 10*d[2] + d[3]
	return a, nil
}
