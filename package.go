// Package fxt reads and writes the Fuchsia Trace Format: a binary
// archive of self-delimiting, word-aligned records produced by a
// kernel/userspace tracing pipeline.
//
// An archive is just a sequence of records read with ReadArchive and
// written with WriteArchive; there is no outer framing, footer, or
// index. Reading starts with a call to ReadArchive, which returns the
// full, ordered slice of Record values found in the stream. Writing
// starts with a slice of Record values built from the New* constructors
// and a call to WriteArchive.
package fxt // import "github.com/tracekit/fxt"
