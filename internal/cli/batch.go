package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/soypat/naca"
	"github.com/soypat/naca/internal/d2"
)

func (a *app) batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch CODE...",
		Short: "Generate several 4-digit designations concurrently and summarize them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, codes []string) error {
			foils := make([]*naca.Airfoil, len(codes))
			for i, code := range codes {
				foil, err := a.cfg.parseCode(code)
				if err != nil {
					return err
				}
				foils[i] = foil
			}
			profiles, err := naca.Profiles(cmd.Context(), foils)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tPOINTS\tMAX THICKNESS\tMAX CAMBER")
			for _, p := range profiles {
				a.log.Debug("profile generated", zap.String("code", p.Code), zap.Int("points", len(p.Upper)))
				fmt.Fprintf(tw, "%s\t%d\t%.6g\t%.6g\n", p.Code, len(p.Upper), maxThickness(p), floats.Max(d2.Set(p.Camber).Ys()))
			}
			return tw.Flush()
		},
	}
}

// maxThickness returns the largest vertical distance between the upper
// and lower surface samples.
func maxThickness(p naca.Profile) float64 {
	gap := d2.Set(p.Upper).Ys()
	floats.Sub(gap, d2.Set(p.Lower).Ys())
	return floats.Max(gap)
}
