package cli

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/soypat/naca"
)

var curveNames = []string{"upper", "lower", "camber", "contour"}

func (a *app) pointsCmd() *cobra.Command {
	var curve string
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Write airfoil curves as CSV rows of curve,x,y",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			foil, err := a.cfg.Airfoil()
			if err != nil {
				return err
			}
			p, err := foil.Profile()
			if err != nil {
				return err
			}
			curves, err := selectCurves(p, curve)
			if err != nil {
				return err
			}
			w := csv.NewWriter(cmd.OutOrStdout())
			if err := w.Write([]string{"curve", "x", "y"}); err != nil {
				return err
			}
			for _, c := range curves {
				a.log.Debug("writing curve", zap.String("code", p.Code), zap.String("curve", c.name), zap.Int("points", len(c.points)))
				for _, v := range c.points {
					if err := w.Write([]string{c.name, formatCoord(v.X), formatCoord(v.Y)}); err != nil {
						return err
					}
				}
			}
			w.Flush()
			return w.Error()
		},
	}
	cmd.Flags().StringVar(&curve, "curve", "all", "curve to emit: upper, lower, camber, contour or all")
	return cmd
}

type namedCurve struct {
	name   string
	points []r2.Vec
}

func selectCurves(p naca.Profile, name string) ([]namedCurve, error) {
	all := map[string][]r2.Vec{
		"upper":   p.Upper,
		"lower":   p.Lower,
		"camber":  p.Camber,
		"contour": p.Contour(),
	}
	if name == "all" {
		return []namedCurve{
			{"upper", p.Upper},
			{"lower", p.Lower},
			{"camber", p.Camber},
		}, nil
	}
	pts, ok := all[name]
	if !ok {
		return nil, fmt.Errorf("unknown curve %q, want one of %v or all", name, curveNames)
	}
	return []namedCurve{{name, pts}}, nil
}

func formatCoord(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
