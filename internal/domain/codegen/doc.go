/*
Package codegen generates the client behavior code of package windows.

# Overview

For each window of a package, in order, the generator:

 1. Defaults the title and icon properties from the package.
 2. Emits one initialization statement per property (except type). The
    title is always the localized LABELS.title accessor.
 3. Resolves every widget signal to a handler name prefixed with "Event".
 4. Selects the handler body: a canned snippet for well-known names, the
    file chooser for file-set signals, or an empty body (generic path).
 5. Binds the widget's DOM event to the handler at creation time.
 6. Sanitizes the window markup into a single-line string literal.

Only the first window is the root window; it alone gets the construct and
show statements returned in PackageCode.

All code is built as js nodes, never by string concatenation, so values
taken from descriptors and schemas are always escaped by the printer.

# Canned snippets

	EventMenuOpen                         open-file (flagged for review)
	EventMenuSave, EventMenuSaveAs        save-file, save-file-as
	EventMenuClose, EventMenuQuit,
	EventClose, EventQuit                 trigger the close action
	EventMenuText{Copy,Paste,Cut,
	SelectAll,Delete}                     clipboard actions

# Usage

	gen := codegen.NewGenerator(logger).WithMetrics(metrics)
	code := gen.Package(codegen.PackageInfo{
		ClassName: "ApplicationTextpad",
		Title:     "Textpad",
		Icon:      "apps/editor.png",
		Mimes:     []string{"text/plain"},
	}, windows)
*/
package codegen
