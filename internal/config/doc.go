// Package config provides 12-factor configuration management for the package compiler.
//
// Configuration is loaded from environment variables with sensible defaults,
// or from a YAML/TOML file. CLI flags override either source.
//
// Configuration Sections:
//   - Paths: package root, build root, template directory
//   - Compiler: default language, production policy, output verification
//   - Logging: log level and output format
//   - Output: build report and metrics textfile locations
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Compiling %s into %s\n", cfg.Paths.PackagesRoot, cfg.Paths.BuildRoot)
//
// Environment Variables:
//   - PACKAGES_ROOT, BUILD_ROOT, TEMPLATES_DIR
//   - DEFAULT_LANGUAGE, ENV_PRODUCTION, VERIFY_SCRIPTS, STRICT_MARKUP, PRECOMPRESS
//   - LOG_LEVEL, LOG_DEV
//   - REPORT_PATH, METRICS_PATH
package config
