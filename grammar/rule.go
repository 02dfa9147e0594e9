package grammar

import "github.com/dynagram/dynagram/match"

// recognizeRule implements spec §4.7: ordered concatenation. All children
// must match, in order; any failure discards the children matched so far
// and restores the iterator to the rule's entry offset. The grammar's skip
// element, if any, is applied greedily between children (not before the
// first) and is never backtracked — this is the "between children only"
// policy spec §9 asks implementations to pick and document.
func (e *ParsingElement) recognizeRule(ctx *Context) *match.Match {
	start := ctx.Iter.Offset()
	var head, tail *match.Match
	for ref, first := e.Children, true; ref != nil; ref, first = ref.next, false {
		if !first {
			applySkip(ctx)
		}
		m := ref.Recognize(ctx)
		if !match.IsSuccess(m) {
			freeMatchChain(head)
			ctx.Iter.MoveTo(start)
			return match.FAILURE
		}
		if head == nil {
			head = m
		} else {
			tail.Next = m
		}
		tail = m
	}
	end := ctx.Iter.Offset()
	out := match.Success(start, end-start, e)
	out.Child = head
	return out
}

// freeMatchChain discards the already-matched children of a Rule that is
// about to fail. It walks head's sibling chain and, for each match whose
// originating element declares a FreeMatch callback, invokes it before
// the match is dropped. Matches without such a callback are left for the
// garbage collector, same as a plain FAILURE.
func freeMatchChain(head *match.Match) {
	for m := head; m != nil; m = m.Next {
		if pe, ok := m.Element.(*ParsingElement); ok && pe.FreeMatch != nil {
			pe.FreeMatch(m)
		}
	}
}

// applySkip invokes the grammar's skip element in a loop while it succeeds
// with non-zero length, discarding its matches. It never backtracks skip:
// a failing skip attempt is trusted to have already restored the iterator
// itself, per the backtrack-cleanliness property every Recognize upholds.
func applySkip(ctx *Context) {
	skip := ctx.Grammar.Skip
	if skip == nil {
		return
	}
	for {
		before := ctx.Iter.Offset()
		m := skip.Recognize(ctx)
		if !match.IsSuccess(m) || m.Length == 0 {
			break
		}
		tracer().Debugf("skip consumed %d units at offset %d", m.Length, before)
	}
}
