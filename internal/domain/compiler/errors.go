package compiler

import "errors"

// Failure causes of a single package. Each one ends the package with
// types.ResultFailure; the batch continues with the next package.
var (
	ErrInvalidName        = errors.New("invalid package name")
	ErrPackageNotFound    = errors.New("package not found")
	ErrUnrecognizedKind   = errors.New("unrecognized package kind")
	ErrDescriptor         = errors.New("descriptor error")
	ErrInvalidWindowModel = errors.New("invalid window model")
	ErrInvalidOutput      = errors.New("generated client module does not parse")
	ErrWrite              = errors.New("artifact write failed")
)
