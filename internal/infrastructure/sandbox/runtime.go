package sandbox

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"
)

// ErrSyntax reports a script that does not parse
var ErrSyntax = errors.New("script syntax error")

// Runtime checks scripts with the goja compiler. No VM is created and no
// script is ever executed.
type Runtime struct {
	config Config
}

// New creates a new syntax checker
func New(config Config) *Runtime {
	return &Runtime{config: config}
}

// CheckSyntax compiles the script and reports the first syntax error
func (r *Runtime) CheckSyntax(name, source string) error {
	if r.config.MaxSourceKB > 0 && len(source) > r.config.MaxSourceKB*1024 {
		return fmt.Errorf("%w: %s exceeds %dKB", ErrSyntax, name, r.config.MaxSourceKB)
	}

	if _, err := goja.Compile(name, source, r.config.Strict); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSyntax, name, err)
	}
	return nil
}

// Nop accepts every script
type Nop struct{}

// CheckSyntax implements Checker
func (Nop) CheckSyntax(string, string) error {
	return nil
}
