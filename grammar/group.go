package grammar

import (
	"github.com/dynagram/dynagram"
	"github.com/dynagram/dynagram/match"
)

// recognizeGroup implements spec §4.6: ordered alternation. Children are
// tried in declaration order; the first to succeed wins and the rest are
// never attempted. A child reference with cardinality ONE is recognized
// directly against its target element, ignoring the reference's own
// cardinality loop, since a Group's alternatives are "does this branch
// match at all", not "how many times". A child reference with a
// non-ONE cardinality is treated per the design note in spec §9 as
// wrapping a sub-sequence: the Group defers to the reference's own
// cardinality-aware Recognize, which means an OPTIONAL or MANY_OPTIONAL
// branch always succeeds (possibly with an empty match) and therefore
// always wins if tried; such references were flagged during Prepare.
func (e *ParsingElement) recognizeGroup(ctx *Context) *match.Match {
	start := ctx.Iter.Offset()
	for ref := e.Children; ref != nil; ref = ref.next {
		ctx.Iter.MoveTo(start)
		var m *match.Match
		if ref.cardinality == dynagram.One {
			m = ref.target.Recognize(ctx)
		} else {
			m = ref.Recognize(ctx)
		}
		if match.IsSuccess(m) {
			out := match.Success(start, m.End()-start, e)
			out.Child = m
			return out
		}
	}
	ctx.Iter.MoveTo(start)
	return match.FAILURE
}
