package grammar

import "github.com/dynagram/dynagram/match"

// recognizeCondition implements spec §4.8: the user callback itself
// decides success (typically an empty match) or failure. By convention a
// Condition consumes nothing; if a callback does consume input, the
// iterator must already reflect that in the match it returns.
func (e *ParsingElement) recognizeCondition(ctx *Context) *match.Match {
	if e.condition == nil {
		return match.FAILURE
	}
	return e.condition(e, ctx)
}
