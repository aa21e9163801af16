/*
Package sandbox verifies generated client scripts.

# Overview

Rendered client modules are compiled with the goja JavaScript engine to
catch syntax errors before anything reaches the build tree. Scripts are
parsed only: no runtime is created, no globals are installed, and nothing
is executed.

# Usage Example

	checker := sandbox.New(sandbox.DefaultConfig())
	if err := checker.CheckSyntax("ApplicationTextpad.js", source); err != nil {
		log.Error("Generated script rejected", zap.Error(err))
	}

Nop satisfies Checker for runs with verification disabled.
*/
package sandbox
