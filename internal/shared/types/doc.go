// Package types provides shared data structures for the package compiler.
//
// Core Types:
//   - PackageKind: Application, System, PanelItem or Service
//   - KindSpec: per-kind defaults and template selection
//   - Descriptor: parsed package metadata document
//   - Window: one window of the UI schema (properties, signals, markup)
//   - Artifact: one rendered output file
//   - Result: per-package outcome code
//
// Example Usage:
//
//	kind, ok := types.KindFromName("ApplicationTextpad")
//	spec, _ := kind.Spec()
//	fmt.Println(spec.Label) // Application
package types
