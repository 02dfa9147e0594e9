package iterator

import (
	"io"

	"github.com/dynagram/dynagram"
)

// BufferAhead is the default number of units the iterator tries to keep
// available ahead of the cursor, unless the source is exhausted first.
const BufferAhead = 64 * 1024

// minTrimQuantum bounds how small a head-trim is allowed to be, to avoid
// thrashing on many small backward moves.
const minTrimQuantum = 4096

// Option configures an Iterator at construction time.
type Option func(*Iterator)

// WithBufferAhead overrides the default lookahead target.
func WithBufferAhead(n int) Option {
	return func(it *Iterator) {
		if n > 0 {
			it.bufferAhead = n
		}
	}
}

// WithLineSeparator overrides the default line-separator unit ('\n').
func WithLineSeparator(b byte) Option {
	return func(it *Iterator) {
		it.lineSep = b
	}
}

// WithTrimming enables head-trimming of the buffer once units fall behind
// the cursor by more than the trim quantum. Off by default, matching
// spec.md's allowance to omit trimming entirely for small inputs.
func WithTrimming(enabled bool) Option {
	return func(it *Iterator) {
		it.trimEnabled = enabled
	}
}

// Iterator streams units from a Source into a growing buffer and exposes a
// cursor into that buffer. Backtracking is implemented by moving the cursor
// backwards; the buffer is never discarded underneath a live offset unless
// trimming has been explicitly enabled.
//
// The buffer grows geometrically (via Go's own slice-append growth policy)
// as the source is read, up to whatever is needed to keep bufferAhead units
// available past the cursor.
type Iterator struct {
	status      dynagram.Status
	src         Source
	buf         []byte
	cursor      int    // index into buf
	trimmed     uint64 // units trimmed from the head of buf; buf[0] is absolute offset `trimmed`
	line        int
	lineSep     byte
	bufferAhead int
	trimEnabled bool
	srcErr      error // sticky terminal read error (including io.EOF)
	furthest    uint64
}

// FromSource creates an Iterator reading from src, pre-loading up to
// BufferAhead units.
func FromSource(src Source, opts ...Option) (*Iterator, error) {
	it := &Iterator{
		status:      dynagram.StatusInit,
		src:         src,
		lineSep:     '\n',
		bufferAhead: BufferAhead,
	}
	for _, opt := range opts {
		opt(it)
	}
	it.status = dynagram.StatusProcessing
	if err := it.fill(it.bufferAhead); err != nil {
		return nil, err
	}
	return it, nil
}

// Open opens a file at path and wraps it in an Iterator.
func Open(path string, opts ...Option) (*Iterator, error) {
	src, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	it, err := FromSource(src, opts...)
	if err != nil {
		src.Close()
		return nil, err
	}
	return it, nil
}

// Close releases the underlying source.
func (it *Iterator) Close() error {
	it.status = dynagram.StatusEnded
	return it.src.Close()
}

// Status returns the iterator's current lifecycle status.
func (it *Iterator) Status() dynagram.Status {
	return it.status
}

// Offset returns the absolute offset of the cursor in the input stream.
func (it *Iterator) Offset() uint64 {
	return it.trimmed + uint64(it.cursor)
}

// Furthest returns the highest absolute offset the cursor has ever
// reached, regardless of any backtracking since. Recognizers restore the
// cursor on failure, which would otherwise erase how far a parse actually
// got; Furthest survives that restoration as a diagnostic aid.
func (it *Iterator) Furthest() uint64 {
	return it.furthest
}

// Line returns the current (advisory) line number, 0-based.
func (it *Iterator) Line() int {
	return it.line
}

// HasMore reports whether at least one more unit is available at or after
// the cursor.
func (it *Iterator) HasMore() bool {
	if it.status == dynagram.StatusEnded {
		return false
	}
	if it.cursor >= len(it.buf) {
		it.fill(1)
	}
	return it.cursor < len(it.buf)
}

// Remaining returns the number of units available from the cursor forward.
// It attempts to keep at least bufferAhead units loaded unless the source
// is exhausted.
func (it *Iterator) Remaining() int {
	if it.status != dynagram.StatusEnded && len(it.buf)-it.cursor < it.bufferAhead {
		it.fill(it.bufferAhead)
	}
	return len(it.buf) - it.cursor
}

// Peek returns the n units at and after the cursor, without moving it. The
// returned slice aliases the internal buffer and is only valid until the
// next mutating call on the iterator.
func (it *Iterator) Peek(n int) []byte {
	if len(it.buf)-it.cursor < n {
		it.fill(n)
	}
	end := it.cursor + n
	if end > len(it.buf) {
		end = len(it.buf)
	}
	return it.buf[it.cursor:end]
}

// fill tries to ensure at least `want` more units are available ahead of
// the cursor, reading from the source in bufferAhead-sized chunks (or
// larger, if a single caller asked for more than that).
func (it *Iterator) fill(want int) error {
	if it.srcErr != nil && it.srcErr != io.EOF {
		return &SourceError{Op: "read", Err: it.srcErr}
	}
	chunk := it.bufferAhead
	if chunk < 1 {
		chunk = BufferAhead
	}
	for len(it.buf)-it.cursor < want && it.srcErr == nil {
		size := chunk
		if need := want - (len(it.buf) - it.cursor); need > size {
			size = need
		}
		tmp := make([]byte, size)
		n, err := it.src.Read(tmp)
		if n > 0 {
			it.buf = append(it.buf, tmp[:n]...)
			tracer().Debugf("iterator read %d bytes, buffer now %d", n, len(it.buf))
		}
		if err != nil {
			it.srcErr = err
			if err == io.EOF {
				it.status = dynagram.StatusInputEnded
				break
			}
			return &SourceError{Op: "read", Err: err}
		}
		if n == 0 {
			break
		}
	}
	return nil
}

// MoveTo repositions the cursor to an absolute offset. It supports moving
// backwards to any offset still resident in the buffer, and forwards,
// pre-loading as needed. It fails if the offset is before the trimmed head
// or past the end of the stream.
func (it *Iterator) MoveTo(offset uint64) bool {
	if offset < it.trimmed {
		return false
	}
	rel := int(offset - it.trimmed)
	if rel > len(it.buf) {
		if err := it.fill(rel - it.cursor); err != nil {
			return false
		}
		if rel > len(it.buf) {
			return false
		}
	}
	it.retrackLines(rel)
	it.cursor = rel
	if off := it.Offset(); off > it.furthest {
		it.furthest = off
	}
	return true
}

// Advance moves the cursor by a signed delta: n > 0 pre-loads on demand and
// moves forward, n < 0 rewinds (used by backtracking). It returns false if
// the move would go out of bounds.
func (it *Iterator) Advance(n int) bool {
	if n == 0 {
		return true
	}
	target := int64(it.Offset()) + int64(n)
	if target < 0 {
		return false
	}
	ok := it.MoveTo(uint64(target))
	if ok {
		tracer().Debugf("iterator advanced %d units, offset now %d", n, it.Offset())
	}
	return ok
}

// retrackLines updates the line counter while moving the cursor from its
// current position to newCursor, counting line-separator crossings in
// whichever direction the move goes.
func (it *Iterator) retrackLines(newCursor int) {
	if newCursor == it.cursor {
		return
	}
	if newCursor > it.cursor {
		for i := it.cursor; i < newCursor && i < len(it.buf); i++ {
			if it.buf[i] == it.lineSep {
				it.line++
			}
		}
	} else {
		for i := it.cursor - 1; i >= newCursor && i < len(it.buf); i-- {
			if it.buf[i] == it.lineSep {
				it.line--
			}
		}
	}
}

// Trim drops buffered units before the cursor once they are no longer
// needed, if trimming was enabled via WithTrimming. minKeep units
// immediately before the cursor are always retained, so a shallow rewind
// remains cheap.
func (it *Iterator) Trim(minKeep int) {
	if !it.trimEnabled {
		return
	}
	drop := it.cursor - minKeep
	if drop < minTrimQuantum {
		return
	}
	it.buf = append(it.buf[:0], it.buf[drop:]...)
	it.cursor -= drop
	it.trimmed += uint64(drop)
	tracer().Debugf("iterator trimmed %d bytes, head now at absolute offset %d", drop, it.trimmed)
}
