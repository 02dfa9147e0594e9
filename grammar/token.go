package grammar

import "github.com/dynagram/dynagram/match"

// tokenPayload is the match payload for a Token recognition: a count plus
// a contiguous array of captured substrings, the 0th being the full match.
// Payload lifetime is tied to the match; there is no separate free step
// since Go's garbage collector reclaims the backing strings once the match
// itself is discarded.
type tokenPayload struct {
	groups []string
}

// recognizeToken implements spec §4.5: run the anchored pattern against
// the buffer starting at the cursor; on match, capture groups go into the
// match payload and the iterator advances by the full-match length.
func (e *ParsingElement) recognizeToken(ctx *Context) *match.Match {
	start := ctx.Iter.Offset()
	buf := ctx.Iter.Peek(ctx.Iter.Remaining())
	loc := e.pattern.FindSubmatchIndex(buf)
	if loc == nil || loc[0] != 0 {
		return match.FAILURE
	}
	length := loc[1]
	groups := make([]string, len(loc)/2)
	for i := range groups {
		lo, hi := loc[2*i], loc[2*i+1]
		if lo < 0 {
			continue
		}
		groups[i] = string(buf[lo:hi])
	}
	ctx.Iter.Advance(length)
	m := match.Success(start, uint64(length), e)
	m.Payload = tokenPayload{groups: groups}
	return m
}

// TokenMatchGroup returns the i-th captured substring of a Token match, or
// "" if m has no such group (including when m did not originate from a
// Token element).
func TokenMatchGroup(m *match.Match, i int) string {
	if !match.IsSuccess(m) {
		return ""
	}
	p, ok := m.Payload.(tokenPayload)
	if !ok || i < 0 || i >= len(p.groups) {
		return ""
	}
	return p.groups[i]
}
