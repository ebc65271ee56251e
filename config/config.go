// Package config loads nucforce settings from defaults, an optional config
// file, NUCFORCE_* environment variables and bound command-line flags, in
// increasing order of precedence, and validates the result.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/viper"

	"github.com/katalvlaran/nucleusforce/force"
	"github.com/katalvlaran/nucleusforce/imaging"
)

// ErrInvalid is returned when the merged configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override, e.g. NUCFORCE_OUTPUT_DIR.
const EnvPrefix = "NUCFORCE"

// Config is the merged, validated configuration.
type Config struct {
	OutputDir string `mapstructure:"output_dir" validate:"required"`
	Method    string `mapstructure:"method" validate:"required,oneof=mindist min-distance min_distance layer"`
	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	Boundary BoundaryColors `mapstructure:"boundary"`
	Marked   MarkedColors   `mapstructure:"marked"`
	Bench    Bench          `mapstructure:"bench"`
	Batch    Batch          `mapstructure:"batch"`
}

// BoundaryColors are the three flat colors of an unmarked segmentation.
type BoundaryColors struct {
	Background string `mapstructure:"background" validate:"required,hexcolor"`
	Cell       string `mapstructure:"cell" validate:"required,hexcolor"`
	Nucleus    string `mapstructure:"nucleus" validate:"required,hexcolor"`
}

// MarkedColors are the colors of a segmentation with hand-marked force
// origins. Any other color is background.
type MarkedColors struct {
	Cell    string `mapstructure:"cell" validate:"required,hexcolor"`
	Nucleus string `mapstructure:"nucleus" validate:"required,hexcolor"`
	Origin  string `mapstructure:"origin" validate:"required,hexcolor"`
}

// Bench controls the timing comparison.
type Bench struct {
	Iterations int    `mapstructure:"iterations" validate:"min=1"`
	Chart      string `mapstructure:"chart"`
}

// Batch controls concurrent processing of many images.
type Batch struct {
	Workers int `mapstructure:"workers" validate:"min=1,max=256"`
}

// New returns a viper instance carrying the defaults and reading
// NUCFORCE_* environment overrides. Flags may be bound to it before Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output_dir", "output")
	v.SetDefault("method", force.MethodMinDistance.String())
	v.SetDefault("log_level", "info")

	v.SetDefault("boundary.background", "#000000")
	v.SetDefault("boundary.cell", "#ff00ff")
	v.SetDefault("boundary.nucleus", "#00ff00")

	v.SetDefault("marked.cell", "#474e93")
	v.SetDefault("marked.nucleus", "#72baa9")
	v.SetDefault("marked.origin", "#d5e7b5")

	v.SetDefault("bench.iterations", 100)
	v.SetDefault("bench.chart", "")
	v.SetDefault("batch.workers", 4)
}

// Load reads path (if non-empty) into v, or looks for an optional
// nucforce.{yaml,toml,json} in the working directory, then unmarshals and
// validates the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	} else {
		v.SetConfigName("nucforce")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the validated defaults without reading files or env.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate checks every field and reports all failures at once, wrapped in
// ErrInvalid.
func (c *Config) Validate() error {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(trans))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// PropagationMethod parses Method.
func (c *Config) PropagationMethod() (force.Method, error) {
	return force.ParseMethod(c.Method)
}

// Parse converts the hex strings to colors.
func (b BoundaryColors) Parse() (background, cell, nucleus imaging.RGB, err error) {
	if background, err = imaging.ParseRGB(b.Background); err != nil {
		return
	}
	if cell, err = imaging.ParseRGB(b.Cell); err != nil {
		return
	}
	nucleus, err = imaging.ParseRGB(b.Nucleus)
	return
}

// Parse converts the hex strings to colors.
func (m MarkedColors) Parse() (cell, nucleus, origin imaging.RGB, err error) {
	if cell, err = imaging.ParseRGB(m.Cell); err != nil {
		return
	}
	if nucleus, err = imaging.ParseRGB(m.Nucleus); err != nil {
		return
	}
	origin, err = imaging.ParseRGB(m.Origin)
	return
}
