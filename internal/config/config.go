package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type SnapshotConfig struct {
	Path string `toml:"path"`
}

type GraphConfig struct {
	Enabled  bool   `toml:"enabled"`
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type IngestConfig struct {
	DefaultSource string `toml:"default_source"`
}

type BuildsConfig struct {
	Path string `toml:"path"`
}

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Snapshot SnapshotConfig `toml:"snapshot"`
	Graph    GraphConfig    `toml:"graph"`
	Ingest   IngestConfig   `toml:"ingest"`
	Builds   BuildsConfig   `toml:"builds"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":8080"},
		Snapshot: SnapshotConfig{Path: "data/lorebase.db"},
		Graph:    GraphConfig{URI: "bolt://localhost:7687"},
		Ingest:   IngestConfig{DefaultSource: "community"},
	}
}

// Load reads a TOML config file and applies environment overrides on top.
// An empty path yields the defaults (still env-overridable).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LOREBASE_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LOREBASE_SNAPSHOT"); v != "" {
		c.Snapshot.Path = v
	}
	if v := os.Getenv("LOREBASE_GRAPH_URI"); v != "" {
		c.Graph.URI = v
		c.Graph.Enabled = true
	}
	if v := os.Getenv("LOREBASE_GRAPH_USER"); v != "" {
		c.Graph.User = v
	}
	if v := os.Getenv("LOREBASE_GRAPH_PASSWORD"); v != "" {
		c.Graph.Password = v
	}
	if v := os.Getenv("LOREBASE_BUILDS"); v != "" {
		c.Builds.Path = v
	}
}
