// Package report records the outcome of a compiler run: a ULID build id,
// the start time, and per package the result and the checksum of every
// rendered artifact. It is written as JSON or printed as a tree.
package report
