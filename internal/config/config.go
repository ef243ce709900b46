package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ResultsDir string     `yaml:"results_dir"`
	Iterations int        `yaml:"iterations"`
	Devices    Devices    `yaml:"devices"`
	Scenarios  []Scenario `yaml:"scenarios"`
	Metrics    []Metric   `yaml:"metrics"`
	Dataset    Dataset    `yaml:"dataset"`
	Plot       Plot       `yaml:"plot"`
}

type Devices struct {
	Min  int `yaml:"min"`
	Step int `yaml:"step"`
	Max  int `yaml:"max"`
}

// Counts expands the device range into the ordered axis values.
func (d Devices) Counts() []int {
	var counts []int
	for n := d.Min; n <= d.Max; n += d.Step {
		counts = append(counts, n)
	}
	return counts
}

type Scenario struct {
	Name   string `yaml:"name"`
	Legend string `yaml:"legend"`
}

// Metric locates one scalar in a SIMRESULT log and describes how to
// post-process it. Row is the number of rows to skip before the value
// row; Col is the 1-based column index within the semicolon-delimited
// row.
type Metric struct {
	Name            string  `yaml:"name"`
	Row             int     `yaml:"row"`
	Col             int     `yaml:"col"`
	AppType         string  `yaml:"app_type"`
	PercentageOfAll bool    `yaml:"percentage_of_all"`
	Divisor         float64 `yaml:"divisor"`
	Label           string  `yaml:"label"`
}

type Dataset struct {
	TrainRatio int   `yaml:"train_ratio"`
	Seed       int64 `yaml:"seed"`
}

type Plot struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	XAxisLabel string `yaml:"x_axis_label"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.ResultsDir == "" {
		return fmt.Errorf("results_dir is required")
	}
	if cfg.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1")
	}
	if cfg.Devices.Min < 1 {
		return fmt.Errorf("devices.min must be positive")
	}
	if cfg.Devices.Step < 1 {
		return fmt.Errorf("devices.step must be positive")
	}
	if cfg.Devices.Max < cfg.Devices.Min {
		return fmt.Errorf("devices.max must be at least devices.min")
	}
	if len(cfg.Scenarios) == 0 {
		return fmt.Errorf("no scenarios defined")
	}
	for i := range cfg.Scenarios {
		s := &cfg.Scenarios[i]
		if s.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if s.Legend == "" {
			s.Legend = s.Name
		}
	}
	seen := map[string]bool{}
	for i := range cfg.Metrics {
		m := &cfg.Metrics[i]
		if m.Name == "" {
			return fmt.Errorf("metric %d: name is required", i)
		}
		if seen[m.Name] {
			return fmt.Errorf("metric %q defined twice", m.Name)
		}
		seen[m.Name] = true
		if m.Row < 0 {
			return fmt.Errorf("metric %q: row offset must not be negative", m.Name)
		}
		if m.Col < 1 {
			return fmt.Errorf("metric %q: col must be at least 1", m.Name)
		}
		if m.AppType == "" {
			m.AppType = "ALL_APPS"
		}
		if m.Divisor == 0 {
			m.Divisor = 1
		}
		if m.Divisor < 0 {
			return fmt.Errorf("metric %q: divisor must be positive", m.Name)
		}
	}
	if cfg.Dataset.TrainRatio == 0 {
		cfg.Dataset.TrainRatio = 80
	}
	if cfg.Dataset.TrainRatio < 1 || cfg.Dataset.TrainRatio > 99 {
		return fmt.Errorf("dataset.train_ratio must be between 1 and 99")
	}
	if cfg.Plot.Width == 0 {
		cfg.Plot.Width = 800
	}
	if cfg.Plot.Height == 0 {
		cfg.Plot.Height = 500
	}
	if cfg.Plot.XAxisLabel == "" {
		cfg.Plot.XAxisLabel = "Number of Devices"
	}
	return nil
}

// Metric returns the catalog entry with the given name.
func (c *Config) Metric(name string) (*Metric, error) {
	for i := range c.Metrics {
		if c.Metrics[i].Name == name {
			return &c.Metrics[i], nil
		}
	}
	return nil, fmt.Errorf("metric %q not found in catalog", name)
}
