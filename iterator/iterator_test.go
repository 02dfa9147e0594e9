package iterator

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func setup(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func newFromString(t *testing.T, s string, opts ...Option) *Iterator {
	t.Helper()
	it, err := FromSource(FromReader(strings.NewReader(s)), opts...)
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}
	return it
}

func TestHasMoreAndRemaining(t *testing.T) {
	defer setup(t)()
	it := newFromString(t, "hello")
	if !it.HasMore() {
		t.Fatal("expected HasMore() == true on a fresh iterator")
	}
	if got := it.Remaining(); got != 5 {
		t.Fatalf("Remaining() = %d, want 5", got)
	}
}

func TestAdvanceForwardAndBackward(t *testing.T) {
	defer setup(t)()
	it := newFromString(t, "abcdef")
	if !it.Advance(3) {
		t.Fatal("Advance(3) failed")
	}
	if it.Offset() != 3 {
		t.Fatalf("Offset() = %d, want 3", it.Offset())
	}
	if !it.Advance(-2) {
		t.Fatal("Advance(-2) failed")
	}
	if it.Offset() != 1 {
		t.Fatalf("Offset() = %d, want 1", it.Offset())
	}
	if it.Advance(-5) {
		t.Fatal("Advance(-5) from offset 1 should fail (would go negative)")
	}
}

func TestMoveToRejectsPastEnd(t *testing.T) {
	defer setup(t)()
	it := newFromString(t, "ab")
	if it.MoveTo(100) {
		t.Fatal("MoveTo(100) on a 2-byte input should fail")
	}
}

func TestPeekDoesNotMoveCursor(t *testing.T) {
	defer setup(t)()
	it := newFromString(t, "xyz")
	buf := it.Peek(2)
	if string(buf) != "xy" {
		t.Fatalf("Peek(2) = %q, want %q", buf, "xy")
	}
	if it.Offset() != 0 {
		t.Fatalf("Offset() = %d after Peek, want 0", it.Offset())
	}
}

func TestLineCounting(t *testing.T) {
	defer setup(t)()
	it := newFromString(t, "a\nb\nc")
	it.Advance(2) // past first \n
	if it.Line() != 1 {
		t.Fatalf("Line() = %d after crossing one newline forward, want 1", it.Line())
	}
	it.Advance(2) // past second \n
	if it.Line() != 2 {
		t.Fatalf("Line() = %d after crossing two newlines forward, want 2", it.Line())
	}
	it.Advance(-2) // back across second \n
	if it.Line() != 1 {
		t.Fatalf("Line() = %d after crossing one newline backward, want 1", it.Line())
	}
}

func TestFurthestSurvivesBacktrack(t *testing.T) {
	defer setup(t)()
	it := newFromString(t, "abcdef")
	it.Advance(5)
	if it.Furthest() != 5 {
		t.Fatalf("Furthest() = %d, want 5", it.Furthest())
	}
	it.Advance(-4)
	if it.Offset() != 1 {
		t.Fatalf("Offset() = %d, want 1", it.Offset())
	}
	if it.Furthest() != 5 {
		t.Fatalf("Furthest() = %d after backtrack, want unchanged 5", it.Furthest())
	}
}

func TestBufferGrowsPastInitialChunk(t *testing.T) {
	defer setup(t)()
	big := strings.Repeat("x", 200000)
	it := newFromString(t, big, WithBufferAhead(1024))
	if got := it.Remaining(); got < 1024 {
		t.Fatalf("Remaining() = %d, want at least the bufferAhead lookahead of 1024", got)
	}
	if !it.MoveTo(150000) {
		t.Fatal("MoveTo(150000) should succeed, growing the buffer to cover it")
	}
	if it.Offset() != 150000 {
		t.Fatalf("Offset() = %d, want 150000", it.Offset())
	}
}
