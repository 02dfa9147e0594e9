/*
Package iterator implements a sliding-buffer reader over an input source.

Iterator streams units (bytes, by default) from a Source into a growing
buffer, and exposes the current position, the remaining lookahead, and a
relocation operation clients use to backtrack. It is the sole input
abstraction the recognition engine in package grammar depends on.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Dynagram Authors

*/
package iterator

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dynagram.iterator'.
func tracer() tracing.Trace {
	return tracing.Select("dynagram.iterator")
}

// Source is the polymorphic input source an Iterator pulls from. A Source
// need not be seekable: Iterator only ever calls Read, buffering whatever
// comes back itself.
type Source interface {
	io.Reader
	io.Closer
}

// nopCloser adapts an io.Reader without a Close method, e.g. a
// strings.Reader or bytes.Reader, to Source.
type nopCloser struct {
	io.Reader
}

func (nopCloser) Close() error { return nil }

// FromReader wraps an io.Reader that has no meaningful Close into a Source.
func FromReader(r io.Reader) Source {
	if c, ok := r.(Source); ok {
		return c
	}
	return nopCloser{r}
}

// SourceError wraps an I/O failure opening or reading a Source. It is
// distinguished from a recognition failure (match.FAILURE), which is never
// an error in the library sense.
type SourceError struct {
	Op  string
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("iterator: %s: %s", e.Op, e.Err.Error())
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// OpenFile opens a file-backed Source for a grammar to parse.
func OpenFile(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Op: "open", Err: err}
	}
	return f, nil
}
