// Package plotfoil draws airfoil profiles with gonum/plot.
package plotfoil

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/soypat/naca"
	"github.com/soypat/naca/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Default figure size, wide enough to keep the section readable.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 3 * vg.Inch
)

// margin is the fraction of the section size left blank around it.
const margin = 0.1

// New returns a plot of the upper and lower surfaces and the camber line of p.
// Axis ranges are framed so x and y share one scale at the default figure
// size; the axis labels take part of the canvas so the match is approximate.
func New(p naca.Profile) (*plot.Plot, error) {
	if len(p.Upper) == 0 || len(p.Lower) == 0 || len(p.Camber) == 0 {
		return nil, errors.New("plotfoil: empty profile")
	}
	plt := plot.New()
	plt.Title.Text = "NACA " + p.Code
	plt.X.Label.Text = "x"
	plt.Y.Label.Text = "y"
	plt.Add(plotter.NewGrid())

	series := []struct {
		name   string
		points []r2.Vec
		dashed bool
	}{
		{"upper", p.Upper, false},
		{"lower", p.Lower, false},
		{"camber", p.Camber, true},
	}
	for i, s := range series {
		line, err := plotter.NewLine(XYs(s.points))
		if err != nil {
			return nil, fmt.Errorf("plotfoil: %s surface: %w", s.name, err)
		}
		line.Color = plotutil.Color(i)
		if s.dashed {
			line.Dashes = plotutil.Dashes(1)
		}
		plt.Add(line)
		plt.Legend.Add(s.name, line)
	}
	plt.Legend.Top = true

	outline := d2.Set(p.Contour()).Bounds()
	frame := outline.Enlarge(r2.Scale(margin, outline.Size())).FitAspect(float64(DefaultWidth / DefaultHeight))
	plt.X.Min, plt.X.Max = frame.Min.X, frame.Max.X
	plt.Y.Min, plt.Y.Max = frame.Min.Y, frame.Max.Y
	return plt, nil
}

// XYs converts points to plotter data.
func XYs(points []r2.Vec) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, v := range points {
		xys[i].X = v.X
		xys[i].Y = v.Y
	}
	return xys
}

// Encode writes plt to w in the given format ("png", "svg", "pdf", "eps", "jpg", "tif").
func Encode(w io.Writer, plt *plot.Plot, width, height vg.Length, format string) error {
	wt, err := plt.WriterTo(width, height, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("plotfoil: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
