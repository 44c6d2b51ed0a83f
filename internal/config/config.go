// Package config loads the TOML file that drives the flo command.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/flo"
	"github.com/gogpu/flo/chart"
	"github.com/gogpu/flo/encode"
	"github.com/gogpu/flo/gauge"
	"golang.org/x/text/language"
)

// Config is the top-level configuration document.
type Config struct {
	Chart   ChartConfig   `toml:"chart"`
	Gauge   GaugeConfig   `toml:"gauge"`
	Output  OutputConfig  `toml:"output"`
	Service ServiceConfig `toml:"service"`
}

// ChartConfig describes the line chart.
type ChartConfig struct {
	Width      int      `toml:"width"`
	Height     int      `toml:"height"`
	Points     []int    `toml:"points"`
	StartColor string   `toml:"start_color"`
	EndColor   string   `toml:"end_color"`
	Labels     bool     `toml:"labels"`
	Title      string   `toml:"title,omitempty"`
	Columns    []string `toml:"columns,omitempty"`
	Lang       string   `toml:"lang,omitempty"`
	FontSize   float64  `toml:"font_size"`
}

// GaugeConfig describes the counter gauge.
type GaugeConfig struct {
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	Counter       int    `toml:"counter"`
	Capacity      int    `toml:"capacity"`
	OutlineColor  string `toml:"outline_color"`
	FillColor     string `toml:"fill_color"`
	CounterPolicy string `toml:"counter_policy,omitempty"`
}

// OutputConfig selects where rendered images go.
type OutputConfig struct {
	// Target is a directory or an s3://bucket/prefix URI.
	Target   string `toml:"target"`
	Format   string `toml:"format"`
	Region   string `toml:"region,omitempty"`
	Endpoint string `toml:"endpoint,omitempty"`
}

// ServiceConfig configures the NATS render service.
type ServiceConfig struct {
	NATSURL       string `toml:"nats_url"`
	SubjectPrefix string `toml:"subject_prefix"`
}

// Default returns the configuration used when no file is given: the
// sample week on a red to green panel and five of eight glasses.
func Default() Config {
	return Config{
		Chart: ChartConfig{
			Width:      300,
			Height:     250,
			Points:     []int{4, 2, 6, 4, 5, 8, 3},
			StartColor: "red",
			EndColor:   "lime",
			FontSize:   12,
		},
		Gauge: GaugeConfig{
			Width:        230,
			Height:       230,
			Counter:      5,
			Capacity:     gauge.DefaultCapacity,
			OutlineColor: "blue",
			FillColor:    "#ff8000",
		},
		Output: OutputConfig{
			Target: ".",
			Format: "png",
		},
		Service: ServiceConfig{
			NATSURL:       "nats://127.0.0.1:4222",
			SubjectPrefix: "flo.render",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path in TOML.
func Save(path string, cfg Config) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("config: %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// Validate checks the fields that can be checked without rendering.
// Sample data and capacity are left to the renderers.
func (c Config) Validate() error {
	if _, err := c.ChartInput(); err != nil {
		return err
	}
	if _, _, err := c.GaugeInput(); err != nil {
		return err
	}
	if _, err := encode.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if c.Chart.Lang != "" {
		if _, err := language.Parse(c.Chart.Lang); err != nil {
			return fmt.Errorf("chart lang %q: %w", c.Chart.Lang, err)
		}
	}
	return nil
}

// ChartInput converts the chart section into renderer input.
func (c Config) ChartInput() (chart.Input, error) {
	start, err := flo.ParseColor(c.Chart.StartColor)
	if err != nil {
		return chart.Input{}, fmt.Errorf("chart start_color: %w", err)
	}
	end, err := flo.ParseColor(c.Chart.EndColor)
	if err != nil {
		return chart.Input{}, fmt.Errorf("chart end_color: %w", err)
	}
	return chart.Input{
		Points:     append([]int(nil), c.Chart.Points...),
		StartColor: start,
		EndColor:   end,
	}, nil
}

// ChartOptions returns the render options for the chart section.
func (c Config) ChartOptions() ([]chart.Option, error) {
	if !c.Chart.Labels {
		return nil, nil
	}
	face, err := flo.DefaultFace(c.Chart.FontSize)
	if err != nil {
		return nil, err
	}
	tag := language.Und
	if c.Chart.Lang != "" {
		if tag, err = language.Parse(c.Chart.Lang); err != nil {
			return nil, fmt.Errorf("chart lang %q: %w", c.Chart.Lang, err)
		}
	}
	return []chart.Option{chart.WithLabels(chart.Labels{
		Face:    face,
		Title:   c.Chart.Title,
		Columns: c.Chart.Columns,
		Lang:    tag,
	})}, nil
}

// GaugeInput converts the gauge section into renderer input and policy.
func (c Config) GaugeInput() (gauge.Input, gauge.CounterPolicy, error) {
	outline, err := flo.ParseColor(c.Gauge.OutlineColor)
	if err != nil {
		return gauge.Input{}, 0, fmt.Errorf("gauge outline_color: %w", err)
	}
	fill, err := flo.ParseColor(c.Gauge.FillColor)
	if err != nil {
		return gauge.Input{}, 0, fmt.Errorf("gauge fill_color: %w", err)
	}
	policy, err := gauge.ParseCounterPolicy(c.Gauge.CounterPolicy)
	if err != nil {
		return gauge.Input{}, 0, err
	}
	return gauge.Input{
		Counter:      c.Gauge.Counter,
		Capacity:     c.Gauge.Capacity,
		OutlineColor: outline,
		FillColor:    fill,
	}, policy, nil
}

// Format returns the configured output format.
func (c Config) Format() (encode.Format, error) {
	return encode.ParseFormat(c.Output.Format)
}
