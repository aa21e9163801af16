// Package main is the entry point of the desktop package compiler.
//
// The compiler turns package directories (metadata.xml plus an optional
// window contract) into the stylesheet, backend stub, client module and
// markup served by the desktop runtime.
//
// Configuration:
//   - Environment variables (12-factor) or a YAML/TOML file (--config)
//   - CLI flags (override both)
//
// Usage:
//
//	# Compile two packages
//	./compiler --root packages --build build compile ApplicationTextpad PanelItemClock
//
//	# Compile everything, skipping disabled packages, with a report
//	./compiler --production --report build/report.json all
//
//	# Check that everything compiles without writing
//	./compiler --check all
//
//	# Remove artifacts of deleted packages
//	./compiler clean
//
// Exit status is non-zero when any package fails. Packages skipped because
// they are disabled do not count as failures.
package main
