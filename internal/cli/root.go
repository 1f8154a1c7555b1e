// Package cli implements the naca command line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/soypat/naca/internal/logging"
)

// Version is set at build time with -ldflags "-X github.com/soypat/naca/internal/cli.Version=...".
var Version = "dev"

// app carries state shared by the commands of one invocation.
type app struct {
	v   *viper.Viper
	cfg Config
	log *zap.Logger
	// ready is set once the logger is configured.
	ready bool
}

// Execute runs the root command and reports whether it failed.
func Execute(ctx context.Context) error {
	a := &app{v: viper.New(), log: zap.NewNop()}
	cmd := a.rootCmd()
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		if a.ready {
			a.log.Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, "naca:", err)
		}
	}
	_ = a.log.Sync()
	return err
}

// NewRootCommand returns a fresh root command with its own configuration
// state. Output is written to the command's Out and Err writers.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "naca",
		Short:         "Generate NACA 4-digit airfoil geometry",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	addConfigFlags(root.PersistentFlags())
	root.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")
	root.AddCommand(
		a.codeCmd(),
		a.pointsCmd(),
		a.plotCmd(),
		a.batchCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.v, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	level := "info"
	if cfg.Debug {
		level = "debug"
	}
	a.log = logging.New(logging.Config{Level: level, Format: cfg.LogFormat}, zapcore.AddSync(cmd.ErrOrStderr()))
	a.ready = true
	a.log.Debug("configuration loaded", zap.Any("config", cfg))
	return nil
}

func (a *app) codeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "code",
		Short: "Print the NACA designation of the configured airfoil",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			foil, err := a.cfg.Airfoil()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), foil.NACACode())
			return err
		},
	}
}
