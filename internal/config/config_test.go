package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PACKAGES_ROOT", "BUILD_ROOT", "TEMPLATES_DIR",
	"DEFAULT_LANGUAGE", "ENV_PRODUCTION", "VERIFY_SCRIPTS", "STRICT_MARKUP", "PRECOMPRESS",
	"LOG_LEVEL", "LOG_DEV", "REPORT_PATH", "METRICS_PATH",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		if value, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { os.Setenv(key, value) })
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	// Paths config
	assert.Equal(t, "packages", cfg.Paths.PackagesRoot)
	assert.Equal(t, "build", cfg.Paths.BuildRoot)
	assert.Empty(t, cfg.Paths.TemplatesDir)

	// Compiler config
	assert.Equal(t, "en_US", cfg.Compiler.DefaultLanguage)
	assert.False(t, cfg.Compiler.Production)
	assert.True(t, cfg.Compiler.VerifyScripts)
	assert.False(t, cfg.Compiler.StrictMarkup)
	assert.False(t, cfg.Compiler.Precompress)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	assert.NoError(t, Validate(cfg))
}

func TestLoadOrDefault(t *testing.T) {
	clearEnv(t)

	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, Default(), cfg)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	clearEnv(t)

	envVars := map[string]string{
		"PACKAGES_ROOT":    "/srv/packages",
		"BUILD_ROOT":       "/srv/build",
		"TEMPLATES_DIR":    "/srv/templates",
		"DEFAULT_LANGUAGE": "nb_NO",
		"ENV_PRODUCTION":   "true",
		"VERIFY_SCRIPTS":   "false",
		"STRICT_MARKUP":    "true",
		"PRECOMPRESS":      "true",
		"LOG_LEVEL":        "debug",
		"LOG_DEV":          "true",
		"REPORT_PATH":      "/srv/build/report.json",
		"METRICS_PATH":     "/srv/build/metrics.prom",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/packages", cfg.Paths.PackagesRoot)
	assert.Equal(t, "/srv/build", cfg.Paths.BuildRoot)
	assert.Equal(t, "/srv/templates", cfg.Paths.TemplatesDir)
	assert.Equal(t, "nb_NO", cfg.Compiler.DefaultLanguage)
	assert.True(t, cfg.Compiler.Production)
	assert.False(t, cfg.Compiler.VerifyScripts)
	assert.True(t, cfg.Compiler.StrictMarkup)
	assert.True(t, cfg.Compiler.Precompress)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, "/srv/build/report.json", cfg.Output.ReportPath)
	assert.Equal(t, "/srv/build/metrics.prom", cfg.Output.MetricsPath)
}

func TestLoadWithPartialEnvironmentVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("BUILD_ROOT", "out")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, "out", cfg.Paths.BuildRoot)
	assert.Equal(t, "warn", cfg.Logging.Level)

	// Default values still apply
	assert.Equal(t, "packages", cfg.Paths.PackagesRoot)
	assert.Equal(t, "en_US", cfg.Compiler.DefaultLanguage)
	assert.True(t, cfg.Compiler.VerifyScripts)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad language", "DEFAULT_LANGUAGE", "en-us\""},
		{"bad log level", "LOG_LEVEL", "loud"},
		{"bad bool", "ENV_PRODUCTION", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)

			// LoadOrDefault falls back instead of failing
			assert.Equal(t, Default(), LoadOrDefault())
		})
	}
}

func TestValidateLanguageCodes(t *testing.T) {
	tests := []struct {
		lang  string
		valid bool
	}{
		{"en_US", true},
		{"nb_NO", true},
		{"de", true},
		{"fil", true},
		{"", false},
		{"EN_us", false},
		{"en-US", false},
		{"en_US'", false},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			cfg := Default()
			cfg.Compiler.DefaultLanguage = tt.lang

			err := Validate(cfg)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compiler.yaml")
	content := `
paths:
  packages_root: /srv/packages
  build_root: /srv/build
compiler:
  default_language: de_DE
  production: true
logging:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/packages", cfg.Paths.PackagesRoot)
	assert.Equal(t, "/srv/build", cfg.Paths.BuildRoot)
	assert.Equal(t, "de_DE", cfg.Compiler.DefaultLanguage)
	assert.True(t, cfg.Compiler.Production)
	assert.Equal(t, "warn", cfg.Logging.Level)

	// Unset keys keep their defaults
	assert.True(t, cfg.Compiler.VerifyScripts)
}

func TestLoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compiler.toml")
	content := `
[paths]
packages_root = "pkgs"

[compiler]
default_language = "fr_FR"
precompress = true

[output]
report_path = "build/report.json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "pkgs", cfg.Paths.PackagesRoot)
	assert.Equal(t, "build", cfg.Paths.BuildRoot)
	assert.Equal(t, "fr_FR", cfg.Compiler.DefaultLanguage)
	assert.True(t, cfg.Compiler.Precompress)
	assert.Equal(t, "build/report.json", cfg.Output.ReportPath)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	ini := filepath.Join(dir, "compiler.ini")
	require.NoError(t, os.WriteFile(ini, []byte("a=b"), 0o644))
	_, err = LoadFile(ini)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "compiler.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("logging:\n  level: loud\n"), 0o644))
	_, err = LoadFile(invalid)
	assert.Error(t, err)
}
