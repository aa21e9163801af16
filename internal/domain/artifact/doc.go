// Package artifact persists rendered artifacts to the build tree.
//
// FileWriter writes each artifact independently with no rollback, so a
// failure part way through a package can leave it partially written.
// Discard performs no I/O and backs dry-run runs; generation still runs
// in full before it.
//
// Clean removes stale artifacts from <build>/apps.
package artifact
