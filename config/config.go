// Package config loads blur presets from YAML files and environment
// variables and turns them into engine options.
package config

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nvr-ai/go-blur/images/kernels"
)

// Environment variables read by ApplyEnv.
const (
	EnvRadius       = "BLUR_RADIUS"
	EnvXRadius      = "BLUR_X_RADIUS"
	EnvYRadius      = "BLUR_Y_RADIUS"
	EnvChannels     = "BLUR_CHANNELS"
	EnvEdgeMode     = "BLUR_EDGE_MODE"
	EnvMethod       = "BLUR_METHOD"
	EnvDirectionalX = "BLUR_DIRECTIONAL_X"
	EnvDirectionalY = "BLUR_DIRECTIONAL_Y"
	EnvParallel     = "BLUR_PARALLEL"
)

// Config is the top-level preset file.
type Config struct {
	Blur   BlurConfig   `json:"blur" yaml:"blur"`
	Output OutputConfig `json:"output" yaml:"output"`
}

// BlurConfig describes one blur in text form.
type BlurConfig struct {
	// Radius applies to both axes unless XRadius or YRadius is set.
	Radius  float64  `json:"radius" yaml:"radius"`
	XRadius *float64 `json:"xRadius,omitempty" yaml:"xRadius,omitempty"`
	YRadius *float64 `json:"yRadius,omitempty" yaml:"yRadius,omitempty"`

	// Channels is a set of R, G, B, A letters, e.g. "RGB".
	Channels string `json:"channels" yaml:"channels"`
	// Edge is one of none, duplicate, wrap (tile) or mirror.
	Edge string `json:"edge" yaml:"edge"`
	// Method is svg or variance.
	Method string `json:"method" yaml:"method"`

	DirectionalX bool `json:"directionalX" yaml:"directionalX"`
	DirectionalY bool `json:"directionalY" yaml:"directionalY"`
	Parallel     bool `json:"parallel" yaml:"parallel"`
}

// OutputConfig controls how results are written.
type OutputConfig struct {
	// Quality is the JPEG/WebP quality, 1..100.
	Quality int `json:"quality" yaml:"quality"`
	// MaxSize shrinks inputs whose larger side exceeds it. 0 disables.
	MaxSize int `json:"maxSize" yaml:"maxSize"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Blur: BlurConfig{
			Radius:   3,
			Channels: "RGBA",
			Edge:     kernels.EdgeDuplicate.String(),
			Method:   kernels.MethodSVG.String(),
		},
		Output: OutputConfig{Quality: 90},
	}
}

// Load reads a YAML preset file on top of Default. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	return Parse(data)
}

// Parse decodes YAML preset data on top of Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "failed to write config")
}

// LoadEnv loads variables from a .env file into the process environment.
// Variables already set are kept. A missing file is not an error.
func LoadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return nil
		}
		return errors.Wrapf(err, "failed to load %s", path)
	}
	return nil
}

// ApplyEnv overrides blur settings from BLUR_* environment variables.
func (c *Config) ApplyEnv() error {
	floats := []struct {
		key string
		set func(float64)
	}{
		{EnvRadius, func(v float64) { c.Blur.Radius = v }},
		{EnvXRadius, func(v float64) { c.Blur.XRadius = &v }},
		{EnvYRadius, func(v float64) { c.Blur.YRadius = &v }},
	}
	for _, f := range floats {
		s, ok := lookup(f.key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.Wrapf(kernels.ErrInvalidConfiguration, "%s=%q", f.key, s)
		}
		f.set(v)
	}

	if s, ok := lookup(EnvChannels); ok {
		c.Blur.Channels = s
	}
	if s, ok := lookup(EnvEdgeMode); ok {
		c.Blur.Edge = s
	}
	if s, ok := lookup(EnvMethod); ok {
		c.Blur.Method = s
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvDirectionalX, &c.Blur.DirectionalX},
		{EnvDirectionalY, &c.Blur.DirectionalY},
		{EnvParallel, &c.Blur.Parallel},
	}
	for _, b := range bools {
		s, ok := lookup(b.key)
		if !ok {
			continue
		}
		v, err := strconv.ParseBool(s)
		if err != nil {
			return errors.Wrapf(kernels.ErrInvalidConfiguration, "%s=%q", b.key, s)
		}
		*b.dst = v
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// Options converts the text settings into engine options.
func (b BlurConfig) Options() (kernels.Options, error) {
	channels, err := kernels.ParseChannels(b.Channels)
	if err != nil {
		return kernels.Options{}, err
	}
	edge, err := kernels.ParseEdgeMode(b.Edge)
	if err != nil {
		return kernels.Options{}, err
	}
	method, err := kernels.ParseRadiusMethod(b.Method)
	if err != nil {
		return kernels.Options{}, err
	}

	opt := kernels.Options{
		XRadius:     b.Radius,
		YRadius:     b.Radius,
		Channels:    channels,
		Edge:        edge,
		Method:      method,
		Directional: kernels.Direction{X: b.DirectionalX, Y: b.DirectionalY},
		Parallel:    b.Parallel,
	}
	if b.XRadius != nil {
		opt.XRadius = *b.XRadius
	}
	if b.YRadius != nil {
		opt.YRadius = *b.YRadius
	}
	if _, err := opt.Plan(); err != nil {
		return kernels.Options{}, err
	}
	return opt, nil
}
