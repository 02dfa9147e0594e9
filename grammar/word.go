package grammar

import "github.com/dynagram/dynagram/match"

// recognizeWord implements spec §4.4: if the wordLen units at the
// iterator's cursor equal the literal byte-for-byte, advance and succeed;
// otherwise fail without moving the iterator.
func (e *ParsingElement) recognizeWord(ctx *Context) *match.Match {
	start := ctx.Iter.Offset()
	if e.wordLen == 0 {
		return match.Empty(start, e)
	}
	buf := ctx.Iter.Peek(e.wordLen)
	if len(buf) < e.wordLen || string(buf) != e.word {
		return match.FAILURE
	}
	ctx.Iter.Advance(e.wordLen)
	return match.Success(start, uint64(e.wordLen), e)
}
