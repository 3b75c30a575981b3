package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Scores struct {
		Path string `yaml:"path"`
		Top  int    `yaml:"top"`
	} `yaml:"scores"`
	Quiz struct {
		DefaultSeconds int    `yaml:"defaultSeconds"`
		MinSeconds     int    `yaml:"minSeconds"`
		BankPath       string `yaml:"bankPath"`
		CacheTTL       string `yaml:"cacheTTL"`
	} `yaml:"quiz"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
}

// Default is the zero-configuration setup: local JSON scores next to the
// binary, 15 seconds per timed question with a 3 second floor, top 5
// leaderboard.
func Default() Config {
	cfg := Config{}
	cfg.Scores.Path = "quiz_scores.json"
	cfg.Scores.Top = 5
	cfg.Quiz.DefaultSeconds = 15
	cfg.Quiz.MinSeconds = 3
	return cfg
}

// Load reads YAML config from path. A missing file yields the defaults so
// the game runs without any configuration at all.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Scores.Path == "" {
		cfg.Scores.Path = "quiz_scores.json"
	}
	if cfg.Scores.Top <= 0 {
		cfg.Scores.Top = 5
	}
	if cfg.Quiz.DefaultSeconds <= 0 {
		cfg.Quiz.DefaultSeconds = 15
	}
	if cfg.Quiz.MinSeconds <= 0 {
		cfg.Quiz.MinSeconds = 3
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty
// or invalid.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
