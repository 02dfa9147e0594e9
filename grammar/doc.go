/*
Package grammar implements parsing elements, references, and the
backtracking recognition engine that is the heart of dynagram.

A grammar is a runtime-mutable graph of ParsingElement nodes — Word, Token,
Group, Rule, Procedure, Condition — wired together by Reference edges that
carry a cardinality (ONE, OPTIONAL, MANY, MANY_OPTIONAL) and an optional
name. Package grammar also ties an axiom element and an optional skip
element into a Grammar, drives end-to-end parsing against an
iterator.Iterator through a Context, and runs the post-recognition
process pass that turns a match tree into an AST.

Recognition is recursive-descent with backtracking: on failure, every
Recognize implementation restores the iterator to the offset it held on
entry, so a caller further up the call chain can try an alternative.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Dynagram Authors

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dynagram.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("dynagram.grammar")
}
