package compiler

import (
	"time"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/config"
)

// TimestampLayout formats the %TIMESTAMP% token
const TimestampLayout = "2006-01-02"

// Options configures a Compiler
type Options struct {
	BuildRoot       string
	DefaultLanguage string
	Production      bool // skip disabled packages
	VerifyScripts   bool // parse every client module before writing
	StrictMarkup    bool // filter window content through the markup policy
	Precompress     bool // write .gz siblings next to static artifacts

	// Now returns the build time; defaults to time.Now
	Now func() time.Time
}

// DefaultOptions returns options matching the default configuration
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig maps loaded configuration onto compiler options
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		BuildRoot:       cfg.Paths.BuildRoot,
		DefaultLanguage: cfg.Compiler.DefaultLanguage,
		Production:      cfg.Compiler.Production,
		VerifyScripts:   cfg.Compiler.VerifyScripts,
		StrictMarkup:    cfg.Compiler.StrictMarkup,
		Precompress:     cfg.Compiler.Precompress,
	}
}
