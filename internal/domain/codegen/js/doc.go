// Package js is a small statement/expression model for generated client
// scripts.
//
// Generators build trees of typed nodes and print them with Print,
// PrintExpr or PrintProperties. Every string value reaches the output
// through Quote, so metadata such as titles, MIME types and widget names
// can never break out of a literal.
//
// Example Usage:
//
//	stmt := js.Do(js.MethodCall(js.Dot(js.This(), "app"), "_clipboard", js.Str("copy")))
//	fmt.Print(js.Print([]js.Stmt{stmt}, 1)) // "  this.app._clipboard(\"copy\");\n"
package js
