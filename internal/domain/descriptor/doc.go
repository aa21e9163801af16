// Package descriptor parses package metadata documents (metadata.xml).
//
// A descriptor names the package, declares its type and an optional UI
// schema, and carries property elements (enabled, title, description,
// icon) plus repeated compability and mime elements. Titles and
// descriptions may be tagged with a language attribute; untagged ones
// are stored under the default language and become the primary value, so
// the last default-language element wins either way.
//
// A schema reference that does not resolve to an existing file is dropped
// silently and the package compiles without windows.
//
// Documents declaring a legacy encoding are decoded through
// golang.org/x/net/html/charset; undeclared non-UTF-8 documents are
// detected with chardet first.
package descriptor
