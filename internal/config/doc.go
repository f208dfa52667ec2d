// Package config provides loading and environment overlay for the fastuuid
// CLI configuration. It exposes a Default() baseline and helpers that turn
// the declarative fields into generator options.
//
// Example:
//
//	cfg := config.Default()
//	// Optionally load from file and overlay env vars
//	if fileCfg, err := config.Load("/etc/fastuuid.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	opts, err := cfg.GeneratorOptions()
//	g, err := fastuuid.NewGenerator(opts...)
package config
