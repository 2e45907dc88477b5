package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logger LoggerConfig `yaml:"logger"`
	Source struct {
		Kind    string `yaml:"kind"` // opentdb or static
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"source"`
	Quiz struct {
		Dwell               string `yaml:"dwell"`
		DecodeBeforeCompare bool   `yaml:"decode_before_compare"`
	} `yaml:"quiz"`
}

// Question source kinds.
const (
	SourceOpenTDB = "opentdb"
	SourceStatic  = "static"
)

type LoggerConfig struct {
	Level string `yaml:"level"` // debug or info
	Env   string `yaml:"env"`   // production selects JSON output
}

// Default is the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.Logger.Level = "info"
	cfg.Logger.Env = "development"
	cfg.Source.Kind = SourceOpenTDB
	cfg.Source.BaseURL = "https://opentdb.com/api.php"
	cfg.Source.Timeout = "10s"
	cfg.Quiz.Dwell = "2s"
	return cfg
}

// Load reads YAML config from path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Duration parses a duration string or returns the fallback if empty or invalid.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	return fallback
}
