/*
Package dynagram is a dynamic parsing-element toolkit.

Dynagram builds grammars as a runtime-mutable graph of composable
recognizers rather than a compiled automaton. A grammar is assembled by
instantiating leaf parsing elements (literal words, regex tokens) and
composite parsing elements (ordered concatenation, ordered alternation),
wiring children through named, cardinality-annotated references, and then
applying the resulting graph to an input stream. Package structure is as
follows:

■ iterator: package iterator implements the sliding-buffer reader that
feeds the recognition engine from a file or any other byte source.

■ match: package match implements the tree of successful recognitions
produced by a parse, plus the FAILURE sentinel.

■ grammar: package grammar implements parsing elements, references, the
backtracking recognition engine, and the grammar/parsing-context types
that tie everything together.

■ grammar/memo: package memo implements an optional packrat-style
memoization table, off by default.

The base package contains tag types used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Dynagram Authors

*/
package dynagram
