// Package render materializes artifacts from text templates.
//
// Templates carry %TOKEN% placeholders. Substitution is a single pass over
// the template: every recognized token is replaced (by an empty string when
// no value is given), unrecognized tokens stay as they are, and values are
// never re-scanned, so a title containing "%CLASSNAME%" is emitted
// verbatim.
//
// The default templates are embedded; a directory with the same file
// names can replace them at startup.
package render
