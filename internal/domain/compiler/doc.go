// Package compiler drives the compilation of desktop packages.
//
// A package is a directory holding a metadata.xml descriptor and, for
// Application and System packages, an optional window contract. Each
// package is parsed, generated, rendered and written before the next one
// starts. A failing package never stops the batch; its Outcome carries the
// cause, which errors.Is matches against the sentinels in errors.go.
//
// Package kinds select their routine through a lookup table:
//
//	Application, System -> windows, stylesheet, backend stub, client module, markup
//	PanelItem           -> stylesheet, backend stub, client module
//	Service             -> stylesheet, backend stub, client module
//
// Compile infers the kind from the directory name prefix. CompileAll reads
// it from the descriptor's declared type instead.
//
// In production mode packages with enabled=false end in
// types.ResultSkippedDisabled without generating anything.
package compiler
