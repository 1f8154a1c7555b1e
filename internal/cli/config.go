package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/soypat/naca"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/spatial/r2"
)

const envPrefix = "NACA"

// Config is the resolved command configuration. Values come from flags,
// NACA_* environment variables and an optional config file, in that order
// of precedence.
type Config struct {
	Camber       float64 `mapstructure:"camber"`
	Position     float64 `mapstructure:"position"`
	Thickness    float64 `mapstructure:"thickness"`
	Chord        float64 `mapstructure:"chord"`
	Distribution string  `mapstructure:"distribution"`
	Step         float64 `mapstructure:"step"`
	ScaleX       float64 `mapstructure:"scale-x"`
	ScaleY       float64 `mapstructure:"scale-y"`
	NoNormalize  bool    `mapstructure:"no-normalize"`
	Debug        bool    `mapstructure:"debug"`
	LogFormat    string  `mapstructure:"log-format"`
}

func addConfigFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (yaml, json or toml)")
	fs.Float64("camber", 2, "maximum camber, percent of chord [0,100]")
	fs.Float64("position", 4, "location of maximum camber, tenths of chord [0,100]")
	fs.Float64("thickness", 15, "maximum thickness, percent of chord [0,100]")
	fs.Float64("chord", 1, "chord length")
	fs.String("distribution", "", "chordwise sampling: linear or cosine (required)")
	fs.Float64("step", 0.1, "sampling step: chord fraction for linear, radians for cosine")
	fs.Float64("scale-x", naca.DefaultNormalization.X, "output scale factor for x")
	fs.Float64("scale-y", naca.DefaultNormalization.Y, "output scale factor for y")
	fs.Bool("no-normalize", false, "emit chord units instead of scaled output units")
	fs.Bool("debug", false, "enable debug logging")
	fs.String("log-format", "console", "log encoding: console or json")
}

// loadConfig resolves the configuration for fs into v.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func (c Config) sampling() (naca.Sampling, error) {
	if c.Distribution == "" {
		return naca.Sampling{}, errors.New("distribution must be set to linear or cosine")
	}
	d, err := naca.ParseDistribution(c.Distribution)
	if err != nil {
		return naca.Sampling{}, err
	}
	return naca.Sampling{Distribution: d, Step: c.Step}, nil
}

// Airfoil returns the airfoil described by c.
func (c Config) Airfoil() (*naca.Airfoil, error) {
	s, err := c.sampling()
	if err != nil {
		return nil, err
	}
	a, err := naca.New(s)
	if err != nil {
		return nil, err
	}
	for _, set := range []struct {
		f func(float64) error
		v float64
	}{
		{a.SetCamber, c.Camber},
		{a.SetCamberDistance, c.Position},
		{a.SetThickness, c.Thickness},
	} {
		if err := set.f(set.v); err != nil {
			return nil, err
		}
	}
	if err := c.finish(a); err != nil {
		return nil, err
	}
	return a, nil
}

// parseCode returns the airfoil for a 4-digit code using the chord,
// sampling and normalization of c.
func (c Config) parseCode(code string) (*naca.Airfoil, error) {
	s, err := c.sampling()
	if err != nil {
		return nil, err
	}
	a, err := naca.ParseCode(code, s)
	if err != nil {
		return nil, err
	}
	if err := c.finish(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (c Config) finish(a *naca.Airfoil) error {
	if err := a.SetChord(c.Chord); err != nil {
		return err
	}
	if c.NoNormalize {
		a.SetNormalization(nil)
	} else {
		a.SetNormalization(&r2.Vec{X: c.ScaleX, Y: c.ScaleY})
	}
	return nil
}
