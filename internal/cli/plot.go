package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/soypat/naca/plotfoil"
)

func (a *app) plotCmd() *cobra.Command {
	var (
		out    string
		format string
		width  float64
		height float64
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw the airfoil to an image file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			foil, err := a.cfg.Airfoil()
			if err != nil {
				return err
			}
			p, err := foil.Profile()
			if err != nil {
				return err
			}
			plt, err := plotfoil.New(p)
			if err != nil {
				return err
			}
			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(out), ".")
			}
			if format == "" {
				format = "png"
			}
			w := cmd.OutOrStdout()
			if out != "-" {
				var f *os.File
				f, err = os.Create(out)
				if err != nil {
					return err
				}
				defer func() {
					if cerr := f.Close(); err == nil {
						err = cerr
					}
					if err != nil {
						os.Remove(out)
					}
				}()
				w = f
			}
			a.log.Debug("plotting", zap.String("code", p.Code), zap.String("out", out), zap.String("format", format))
			return plotfoil.Encode(w, plt, plotfoil.DefaultWidth*vg.Length(width), plotfoil.DefaultHeight*vg.Length(height), format)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "airfoil.png", `output file, "-" for stdout`)
	cmd.Flags().StringVar(&format, "format", "", "image format, defaults to the output file extension")
	cmd.Flags().Float64Var(&width, "width", 1, "width relative to the default figure size")
	cmd.Flags().Float64Var(&height, "height", 1, "height relative to the default figure size")
	return cmd
}
