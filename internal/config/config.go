// Package config loads CLI defaults from a YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/timetable-go/pkg/timetable"
	"gopkg.in/yaml.v3"
)

// Config holds the CLI defaults.
type Config struct {
	DefaultStartTime string `yaml:"default_start_time"`
	DefaultHours     int    `yaml:"default_hours"`
	LogLevel         string `yaml:"log_level"`
	Pretty           bool   `yaml:"pretty"`
	AllowEmpty       bool   `yaml:"allow_empty"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		DefaultStartTime: timetable.DefaultStartTime,
		DefaultHours:     timetable.DefaultHours,
		LogLevel:         "warn",
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if err := c.Options(nil).Validate(); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Options converts the config into parse options.
func (c *Config) Options(log logrus.FieldLogger) timetable.Options {
	return timetable.Options{
		StartTime:    c.DefaultStartTime,
		DefaultHours: c.DefaultHours,
		Logger:       log,
	}
}

// Logger builds a stderr text logger at the configured level.
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(level)
	}
	return log
}
