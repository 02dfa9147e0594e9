package grammar

import "github.com/dynagram/dynagram/match"

// recognizeProcedure implements spec §4.8: invoke the user callback for
// its side effect on ctx, consume nothing, and always succeed with an
// empty match.
func (e *ParsingElement) recognizeProcedure(ctx *Context) *match.Match {
	if e.procedure != nil {
		e.procedure(e, ctx)
	}
	return match.Empty(ctx.Iter.Offset(), e)
}
