package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rzbill/fastuuid/pkg/fastuuid"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Generator.ByteOrder != "little" || cfg.Generator.CounterStart != "seed" {
		t.Fatalf("generator defaults: %+v", cfg.Generator)
	}
	if cfg.Format != FormatHex128 {
		t.Fatalf("format default %q", cfg.Format)
	}
	if cfg.Audit.Enabled {
		t.Fatalf("audit should be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "fastuuid.json")
	data := []byte(`{"generator":{"byteOrder":"big","counterStart":"zero"},"format":"uuid","audit":{"enabled":true,"fsync":"always"}}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Generator.ByteOrder != "big" || cfg.Generator.CounterStart != "zero" {
		t.Fatalf("generator: %+v", cfg.Generator)
	}
	if cfg.Format != FormatUUID || !cfg.Audit.Enabled || cfg.Audit.Fsync != "always" {
		t.Fatalf("unexpected cfg %+v", cfg)
	}
	// untouched fields keep defaults
	if cfg.Bench.Workers != 4 {
		t.Fatalf("expected default bench workers")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "fastuuid.yaml")
	data := []byte("generator:\n  byteOrder: big\nlog:\n  level: debug\n  format: json\nbench:\n  workers: 16\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Generator.ByteOrder != "big" || cfg.Generator.CounterStart != "seed" {
		t.Fatalf("generator: %+v", cfg.Generator)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("log: %+v", cfg.Log)
	}
	if cfg.Bench.Workers != 16 {
		t.Fatalf("bench workers %d", cfg.Bench.Workers)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	file := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(file, []byte("generator: [1, 2"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(file); err == nil {
		t.Fatalf("expected parse error")
	}
	cfg, err := Load("")
	if err != nil || cfg.Format != FormatHex128 {
		t.Fatalf("empty path should give defaults: %+v %v", cfg, err)
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("FASTUUID_BYTE_ORDER", "big")
	t.Setenv("FASTUUID_COUNTER_START", "zero")
	t.Setenv("FASTUUID_AUDIT", "true")
	t.Setenv("FASTUUID_BENCH_WORKERS", "8")
	t.Setenv("FASTUUID_FSYNC_INTERVAL_MS", "not-a-number")
	FromEnv(&cfg)
	if cfg.Generator.ByteOrder != "big" || cfg.Generator.CounterStart != "zero" {
		t.Fatalf("env override generator: %+v", cfg.Generator)
	}
	if !cfg.Audit.Enabled {
		t.Fatalf("env override bool")
	}
	if cfg.Bench.Workers != 8 {
		t.Fatalf("env override workers")
	}
	if cfg.Audit.FsyncIntervalMs != 5 {
		t.Fatalf("invalid int should be ignored, got %d", cfg.Audit.FsyncIntervalMs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"byte order", func(c *Config) { c.Generator.ByteOrder = "middle" }},
		{"counter start", func(c *Config) { c.Generator.CounterStart = "one" }},
		{"format", func(c *Config) { c.Format = "base32" }},
		{"fsync", func(c *Config) { c.Audit.Fsync = "sometimes" }},
		{"bench", func(c *Config) { c.Bench.Workers = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestGeneratorOptions(t *testing.T) {
	cfg := Default()
	cfg.Generator.ByteOrder = "big"
	opts, err := cfg.GeneratorOptions()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	g, err := fastuuid.NewGenerator(opts...)
	if err != nil {
		t.Fatalf("generator: %v", err)
	}
	if g.ByteOrder() != fastuuid.BigEndian {
		t.Fatalf("byte order %v", g.ByteOrder())
	}
}

func TestAuditDir(t *testing.T) {
	cfg := Default()
	cfg.Audit.DataDir = "/custom/audit"
	if cfg.AuditDir() != "/custom/audit" {
		t.Fatalf("explicit dir not kept")
	}
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "/xdg")
	cfg.Audit.DataDir = ""
	if got := cfg.AuditDir(); got != filepath.Join("/xdg", "fastuuid", "audit") {
		t.Fatalf("audit dir %s", got)
	}
}
