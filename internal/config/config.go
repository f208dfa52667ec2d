package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rzbill/fastuuid/pkg/fastuuid"
	logpkg "github.com/rzbill/fastuuid/pkg/log"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by the gen command.
const (
	FormatHex128 = "hex128"
	FormatRaw    = "raw"
	FormatUUID   = "uuid"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	Generator GeneratorConfig `json:"generator" yaml:"generator"`

	// Format is the default gen output: hex128|raw|uuid.
	Format string        `json:"format" yaml:"format"`
	Log    logpkg.Config `json:"log" yaml:"log"`
	Audit  AuditConfig   `json:"audit" yaml:"audit"`
	Bench  BenchConfig   `json:"bench" yaml:"bench"`
}

// GeneratorConfig selects the counter layout.
type GeneratorConfig struct {
	// ByteOrder is little|big.
	ByteOrder string `json:"byteOrder" yaml:"byteOrder"`
	// CounterStart is seed|zero.
	CounterStart string `json:"counterStart" yaml:"counterStart"`
}

// AuditConfig controls the collision audit store.
type AuditConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// DataDir holds the Pebble store. Empty means DefaultDataDir()/audit.
	DataDir string `json:"dataDir" yaml:"dataDir"`
	// Fsync is always|interval|never.
	Fsync           string `json:"fsync" yaml:"fsync"`
	FsyncIntervalMs int    `json:"fsyncIntervalMs" yaml:"fsyncIntervalMs"`
}

// BenchConfig holds defaults for the bench command.
type BenchConfig struct {
	Workers   int    `json:"workers" yaml:"workers"`
	PerWorker int    `json:"perWorker" yaml:"perWorker"`
	Mode      string `json:"mode" yaml:"mode"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Generator: GeneratorConfig{
			ByteOrder:    fastuuid.LittleEndian.String(),
			CounterStart: fastuuid.CounterFromSeed.String(),
		},
		Format: FormatHex128,
		Log: logpkg.Config{
			Level:  "info",
			Format: "text",
		},
		Audit: AuditConfig{
			Fsync:           "interval",
			FsyncIntervalMs: 5,
		},
		Bench: BenchConfig{
			Workers:   4,
			PerWorker: 100000,
			Mode:      "next",
		},
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if _, err := c.GeneratorOptions(); err != nil {
		return err
	}
	switch c.Format {
	case FormatHex128, FormatRaw, FormatUUID:
	default:
		return fmt.Errorf("config: unknown format %q; use hex128|raw|uuid", c.Format)
	}
	switch c.Audit.Fsync {
	case "", "always", "interval", "never":
	default:
		return fmt.Errorf("config: unknown fsync %q; use always|interval|never", c.Audit.Fsync)
	}
	if c.Bench.Workers < 0 || c.Bench.PerWorker < 0 {
		return fmt.Errorf("config: bench workers and perWorker must not be negative")
	}
	return nil
}

// GeneratorOptions converts the generator section into fastuuid options.
func (c Config) GeneratorOptions() ([]fastuuid.Option, error) {
	order, err := fastuuid.ParseByteOrder(c.Generator.ByteOrder)
	if err != nil {
		return nil, err
	}
	start, err := fastuuid.ParseCounterStart(c.Generator.CounterStart)
	if err != nil {
		return nil, err
	}
	return []fastuuid.Option{fastuuid.WithByteOrder(order), fastuuid.WithCounterStart(start)}, nil
}

// AuditDir returns the audit store directory, falling back to the default data dir.
func (c Config) AuditDir() string {
	if c.Audit.DataDir != "" {
		return c.Audit.DataDir
	}
	return filepath.Join(DefaultDataDir(), "audit")
}
