/*
Package memo implements an optional packrat-style memoization table for
the recognition engine in package grammar: a (element id, offset) -> Match
cache, named after the ParsingOffset/ParsingStep bookkeeping the source
this was drawn from sketches for the same purpose.

Wiring this table in is opt-in: a Grammar only allocates one when
constructed with grammar.WithMemoization, and Context.Memo is nil
otherwise. Procedure and Condition elements are never memoized even on an
opted-in Grammar, since their callbacks may have side effects on
Context.UData that a cache hit would silently skip.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Dynagram Authors

*/
package memo

import (
	"github.com/cnf/structhash"

	"github.com/dynagram/dynagram/match"
)

// step is the (element id, offset) key identifying one memoized
// recognition attempt, named after the ParsingStep concept the table is
// grounded on.
type step struct {
	ElementID int
	Offset    uint64
}

// Table is a packrat memoization table, keyed by a hash of (element id,
// offset). It is safe for use by a single in-flight parse; like the rest
// of the recognition engine, it is not safe for concurrent parses sharing
// one Table.
type Table struct {
	entries map[string]*match.Match
}

// New creates an empty memoization table.
func New() *Table {
	return &Table{entries: make(map[string]*match.Match)}
}

// Get returns the memoized match for (elementID, offset), if any.
func (t *Table) Get(elementID int, offset uint64) (*match.Match, bool) {
	key, err := hash(elementID, offset)
	if err != nil {
		return nil, false
	}
	m, ok := t.entries[key]
	return m, ok
}

// Put records the outcome of recognizing elementID at offset. m may be
// match.FAILURE: a memoized failure is as valid a cache hit as a memoized
// success.
func (t *Table) Put(elementID int, offset uint64, m *match.Match) {
	key, err := hash(elementID, offset)
	if err != nil {
		return
	}
	t.entries[key] = m
}

// Reset discards all memoized entries, e.g. between independent parses
// sharing one Table instance.
func (t *Table) Reset() {
	t.entries = make(map[string]*match.Match)
}

// Len reports how many (element, offset) pairs are currently memoized.
func (t *Table) Len() int {
	return len(t.entries)
}

func hash(elementID int, offset uint64) (string, error) {
	return structhash.Hash(step{ElementID: elementID, Offset: offset}, 1)
}
