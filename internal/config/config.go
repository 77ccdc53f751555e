package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTable  = "passwords"
	DefaultColumn = "password"
)

type Config struct {
	// Seed fixes the random generator; nil means seed from the clock.
	Seed   *int64        `yaml:"seed"`
	Rules  []string      `yaml:"rules"`
	SQLite *SQLiteConfig `yaml:"sqlite"`
}

type SQLiteConfig struct {
	Table  string `yaml:"table"`
	Column string `yaml:"column"`
	Where  string `yaml:"where"`
}

func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SQLiteSource returns the table settings with defaults filled in.
func (c *Config) SQLiteSource() SQLiteConfig {
	out := SQLiteConfig{Table: DefaultTable, Column: DefaultColumn}
	if c == nil || c.SQLite == nil {
		return out
	}
	if c.SQLite.Table != "" {
		out.Table = c.SQLite.Table
	}
	if c.SQLite.Column != "" {
		out.Column = c.SQLite.Column
	}
	out.Where = c.SQLite.Where
	return out
}
