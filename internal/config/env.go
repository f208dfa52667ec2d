package config

import (
	"os"
	"strconv"
)

// FromEnv overlays FASTUUID_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("FASTUUID_BYTE_ORDER"); v != "" {
		cfg.Generator.ByteOrder = v
	}
	if v := os.Getenv("FASTUUID_COUNTER_START"); v != "" {
		cfg.Generator.CounterStart = v
	}
	if v := os.Getenv("FASTUUID_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("FASTUUID_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FASTUUID_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("FASTUUID_AUDIT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audit.Enabled = b
		}
	}
	if v := os.Getenv("FASTUUID_DATA_DIR"); v != "" {
		cfg.Audit.DataDir = v
	}
	if v := os.Getenv("FASTUUID_FSYNC"); v != "" {
		cfg.Audit.Fsync = v
	}
	if v := os.Getenv("FASTUUID_FSYNC_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Audit.FsyncIntervalMs = n
		}
	}
	if v := os.Getenv("FASTUUID_BENCH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Bench.Workers = n
		}
	}
	if v := os.Getenv("FASTUUID_BENCH_PER_WORKER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Bench.PerWorker = n
		}
	}
}
