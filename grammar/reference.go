package grammar

import (
	"fmt"

	"github.com/dynagram/dynagram"
	"github.com/dynagram/dynagram/match"
)

// Reference is a cardinality- and optionally name-annotated edge from a
// composite element to a child element. References form the children list
// of Group and Rule elements, linked via next; they are the unit of
// iteration during recognition.
type Reference struct {
	id          int // assigned during Grammar.Prepare; -1 until then
	cardinality dynagram.Cardinality
	name        string
	target      *ParsingElement
	next        *Reference // next sibling reference in the owning composite's children list
}

// NewReference wraps target in a Reference with default cardinality ONE.
func NewReference(target *ParsingElement) *Reference {
	return &Reference{id: -1, cardinality: dynagram.One, target: target}
}

// Ensure coerces x, which must be a *ParsingElement or a *Reference, into a
// *Reference: if x is already a reference it is returned as-is (its next
// pointer is left to the caller, e.g. NewGroup/NewRule's chain builder),
// otherwise it is wrapped with cardinality ONE.
func Ensure(x interface{}) *Reference {
	switch v := x.(type) {
	case *Reference:
		return v
	case *ParsingElement:
		return NewReference(v)
	default:
		panic(fmt.Sprintf("grammar: Ensure: not an element or reference: %T", x))
	}
}

// ID returns the id assigned to r by the owning Grammar's last Prepare
// call, or -1 if the grammar has not been prepared.
func (r *Reference) ID() int {
	if r == nil {
		return -1
	}
	return r.id
}

// SetCardinality sets r's cardinality and returns r, for chaining at
// construction time.
func (r *Reference) SetCardinality(c dynagram.Cardinality) *Reference {
	r.cardinality = c
	return r
}

// SetName sets r's name and returns r, for chaining at construction time.
func (r *Reference) SetName(name string) *Reference {
	r.name = name
	return r
}

// Cardinality returns r's cardinality.
func (r *Reference) Cardinality() dynagram.Cardinality {
	return r.cardinality
}

// Name returns r's name, or "" if unnamed.
func (r *Reference) Name() string {
	return r.name
}

// Target returns the element r points to.
func (r *Reference) Target() *ParsingElement {
	return r.target
}

// Recognize is the reference-level loop that multiplies the target
// element's recognition by r's cardinality (spec §4.3). It always returns
// a match whose Element is r.target, whose Offset is the iterator's offset
// on entry, and whose Length is the total span consumed; the individual
// per-attempt matches hang off the returned match's Child chain.
func (r *Reference) Recognize(ctx *Context) *match.Match {
	start := ctx.Iter.Offset()
	switch r.cardinality {
	case dynagram.One:
		m := r.target.Recognize(ctx)
		if !match.IsSuccess(m) {
			ctx.Iter.MoveTo(start)
			return match.FAILURE
		}
		return r.wrap(start, m, m)
	case dynagram.Optional:
		m := r.target.Recognize(ctx)
		if !match.IsSuccess(m) {
			ctx.Iter.MoveTo(start)
			return r.wrapEmpty(start)
		}
		return r.wrap(start, m, m)
	case dynagram.Many, dynagram.ManyOptional:
		return r.recognizeMany(ctx, start)
	default:
		panic(fmt.Sprintf("grammar: reference has unknown cardinality %v", r.cardinality))
	}
}

// recognizeMany implements the MANY/MANY_OPTIONAL loop: require at least
// one success for MANY (zero for MANY_OPTIONAL), then repeat until an
// attempt fails or an attempt succeeds without advancing the iterator —
// the latter case terminates the loop as though the next attempt had
// failed, so a child that always matches with zero length cannot loop
// forever.
func (r *Reference) recognizeMany(ctx *Context, start uint64) *match.Match {
	var head, tail *match.Match
	count := 0
	for {
		before := ctx.Iter.Offset()
		m := r.target.Recognize(ctx)
		if !match.IsSuccess(m) {
			ctx.Iter.MoveTo(before)
			break
		}
		count++
		if head == nil {
			head = m
		} else {
			tail.Next = m
		}
		tail = m
		if ctx.Iter.Offset() == before {
			tracer().Debugf("reference %s: child matched zero-length, stopping MANY loop", r.describe())
			break
		}
	}
	if count == 0 {
		if r.cardinality == dynagram.Many {
			ctx.Iter.MoveTo(start)
			return match.FAILURE
		}
		return r.wrapEmpty(start)
	}
	return r.wrap(start, head, tail)
}

func (r *Reference) wrap(start uint64, head, tail *match.Match) *match.Match {
	out := match.Success(start, tail.End()-start, r.target)
	out.Child = head
	if head == tail {
		// ONE/OPTIONAL: the aggregate match stands for exactly the one
		// underlying recognition, so it carries that match's payload too —
		// callers naming a reference (SetName) can inspect the wrap
		// directly instead of having to know to step into .Child first.
		out.Payload = head.Payload
	}
	if r.name != "" {
		out.WithName(r.name)
	}
	return out
}

func (r *Reference) wrapEmpty(start uint64) *match.Match {
	out := match.Empty(start, r.target)
	if r.name != "" {
		out.WithName(r.name)
	}
	return out
}

func (r *Reference) describe() string {
	if r.name != "" {
		return fmt.Sprintf("%q->%s", r.name, r.target.Name())
	}
	return fmt.Sprintf("->%s", r.target.Name())
}
