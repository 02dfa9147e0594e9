package grammar

import (
	"github.com/dynagram/dynagram/grammar/memo"
	"github.com/dynagram/dynagram/iterator"
)

// Context is the per-parse mutable state: the grammar being applied, the
// iterator being consumed, an opaque, user-extensible scratch slot for
// Procedure/Condition elements (e.g. an indentation stack or a symbol
// table), and an optional packrat memo table. Exactly one Context is live
// per in-flight parse.
type Context struct {
	Grammar *Grammar
	Iter    *iterator.Iterator
	UData   interface{}
	Memo    *memo.Table // nil unless the Grammar was built WithMemoization
}

func newContext(g *Grammar, it *iterator.Iterator) *Context {
	return &Context{Grammar: g, Iter: it}
}
