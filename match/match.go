/*
Package match implements the tree of successful recognitions produced by a
parse, plus the process-wide FAILURE sentinel.

A Match describes one successful recognition: an absolute offset and length
in the input, the parsing element that produced it, an element-specific
payload, and two links — Child (first child match, for composites) and
Next (sibling match in a cardinality-many chain). FAILURE is never freed
and is identified by pointer identity, never by field comparison.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Dynagram Authors

*/
package match

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dynagram.match'.
func tracer() tracing.Trace {
	return tracing.Select("dynagram.match")
}

// Element is the minimal view of a parsing element a Match needs: enough to
// print it. Package grammar's ParsingElement satisfies this interface;
// grammar reaches an element's payload destructor and process hook by
// asserting Element back to that type.
type Element interface {
	Name() string
}

// Status is MATCHED for every Match produced by success/empty, and is
// never inspected directly by callers — they test for failure with
// IsSuccess, which is an identity check against FAILURE.
type Status byte

const (
	Matched Status = 'M'
	Failed  Status = 'F'
)

// Match describes one successful recognition, or is the distinguished
// FAILURE sentinel.
type Match struct {
	status  Status
	Offset  uint64      // absolute offset in input
	Length  uint64      // units consumed, possibly 0
	Element Element     // originating element
	Name    string      // name of the reference that produced this match, if any
	Payload interface{} // element-specific payload (e.g. token capture groups)
	Value   interface{} // set by the process pass; nil until then
	Child   *Match      // first child match, for composites
	Next    *Match      // sibling match in a cardinality-many loop
}

// FAILURE is the process-wide sentinel for a failed recognition attempt.
// It is never freed. Test for it with IsSuccess, which compares against
// this pointer by identity and also treats nil as a failure.
var FAILURE = &Match{status: Failed}

// IsSuccess reports whether m is a successful match, i.e. not the FAILURE
// sentinel. It is an identity test, per spec.
func IsSuccess(m *Match) bool {
	return m != nil && m != FAILURE
}

// Success constructs a successful match of the given length, starting at
// offset, for element.
func Success(offset, length uint64, element Element) *Match {
	return &Match{
		status:  Matched,
		Offset:  offset,
		Length:  length,
		Element: element,
	}
}

// Empty constructs a zero-length successful match at offset, for element.
// Legal for Procedure, Condition, and OPTIONAL/MANY_OPTIONAL references
// that matched nothing.
func Empty(offset uint64, element Element) *Match {
	return Success(offset, 0, element)
}

// End returns the offset just behind the match, i.e. Offset+Length.
func (m *Match) End() uint64 {
	if m == nil {
		return 0
	}
	return m.Offset + m.Length
}

// WithName returns m with Name set, for tagging a match with the name of
// the reference that produced it. It mutates and returns m for chaining.
func (m *Match) WithName(name string) *Match {
	if m != nil && m != FAILURE {
		m.Name = name
	}
	return m
}

// StopWalk is returned by a walk callback to terminate the traversal early.
var StopWalk = fmt.Errorf("stop walk")

// Walk performs a pre-order traversal over Child then Next, invoking
// callback(match, depth). depth is incremented descending into Child and
// held constant across Next. Walk stops early if callback returns
// StopWalk, and returns that sentinel itself in that case; any other
// non-nil error also stops the walk and is propagated.
func (m *Match) Walk(callback func(m *Match, depth int) error) error {
	return walk(m, 0, callback)
}

func walk(m *Match, depth int, callback func(*Match, int) error) error {
	for m != nil && m != FAILURE {
		if err := callback(m, depth); err != nil {
			return err
		}
		if m.Child != nil {
			if err := walk(m.Child, depth+1, callback); err != nil {
				return err
			}
		}
		m = m.Next
	}
	return nil
}

// ChildByName scans m's child chain (the Next-linked siblings under
// m.Child) for the first match whose Name equals name. It returns nil if
// none match. This mirrors the named-reference lookup the original
// libparsing C sources exposed via TReference.name.
func (m *Match) ChildByName(name string) *Match {
	if m == nil || m == FAILURE {
		return nil
	}
	for c := m.Child; c != nil; c = c.Next {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Children collects the child chain into a slice, in order. Convenience
// for callers that would rather range than walk pointers.
func (m *Match) Children() []*Match {
	if m == nil || m == FAILURE {
		return nil
	}
	var out []*Match
	for c := m.Child; c != nil; c = c.Next {
		out = append(out, c)
	}
	return out
}

func (m *Match) String() string {
	if m == nil {
		return "<nil match>"
	}
	if m == FAILURE {
		return "FAILURE"
	}
	name := ""
	if m.Element != nil {
		name = m.Element.Name()
	}
	return fmt.Sprintf("Match(%s @%d+%d)", name, m.Offset, m.Length)
}
