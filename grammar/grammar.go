package grammar

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/dynagram/dynagram"
	"github.com/dynagram/dynagram/grammar/memo"
	"github.com/dynagram/dynagram/iterator"
	"github.com/dynagram/dynagram/match"
)

// Grammar ties an axiom element and an optional skip element together,
// performs the pre-parse preparation pass, and drives end-to-end parsing
// against an iterator.
type Grammar struct {
	Name     string
	Axiom    *ParsingElement
	Skip     *ParsingElement // optional; invoked between Rule children
	prepared bool
	memoize  bool
}

// Option configures a Grammar at construction time.
type Option func(*Grammar)

// WithMemoization opts a Grammar into packrat-style memoization: every
// parse started via ParseFromIterator/ParseFromPath gets a fresh
// grammar/memo.Table, consulted and filled by Word/Token/Group/Rule
// recognition (Procedure and Condition are never memoized, since their
// callbacks may have side effects on Context.UData that a cache must not
// paper over).
func WithMemoization() Option {
	return func(g *Grammar) {
		g.memoize = true
	}
}

// New creates a Grammar with the given axiom. Skip may be set afterwards
// on the returned value before the first Parse/Prepare call.
func New(name string, axiom *ParsingElement, opts ...Option) *Grammar {
	g := &Grammar{Name: name, Axiom: axiom}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Prepare performs a breadth-first walk from the axiom (and, if set, from
// skip), visiting elements and references and assigning monotonically
// increasing ids starting at 0 for each root. A visited set, keyed by
// element identity, makes cycles in the element/reference graph safe to
// traverse: Prepare never revisits an element.
//
// Calling Prepare twice yields the same id assignment, since the walk
// order is a deterministic function of the (unmutated) graph.
//
// Prepare does not attempt to prove that a cyclic grammar terminates —
// doing so in general is equivalent to the left-recursion analysis
// spec.md's Non-goals explicitly exclude. The zero-length MANY/
// MANY_OPTIONAL termination rule in Reference.Recognize is the actual
// runtime safety net against non-terminating loops.
func (g *Grammar) Prepare() error {
	if g.Axiom == nil {
		return &StructuralError{Reason: NilAxiom}
	}
	if err := prepareFrom(g.Axiom); err != nil {
		return err
	}
	if g.Skip != nil {
		if err := prepareFrom(g.Skip); err != nil {
			return err
		}
	}
	g.prepared = true
	tracer().Debugf("grammar %q prepared", g.Name)
	return nil
}

func prepareFrom(root *ParsingElement) error {
	queue := arraylist.New()
	visited := hashset.New()

	root.id = 0
	nextElementID := 1
	nextReferenceID := 0
	visited.Add(root)
	queue.Add(root)

	for !queue.Empty() {
		v, _ := queue.Get(0)
		queue.Remove(0)
		e := v.(*ParsingElement)

		if !e.Kind.IsComposite() {
			continue
		}
		if e.Children == nil {
			return &StructuralError{Reason: EmptyChildren, Element: e}
		}
		for ref := e.Children; ref != nil; ref = ref.next {
			ref.id = nextReferenceID
			nextReferenceID++
			if e.Kind == dynagram.GroupKind && ref.cardinality != dynagram.One {
				tracer().Debugf(
					"grammar: Group %q child reference %q has cardinality %v, "+
						"not ONE; this branch always succeeds and will always win if tried",
					e.Name(), ref.describe(), ref.cardinality)
			}
			if !visited.Contains(ref.target) {
				visited.Add(ref.target)
				ref.target.id = nextElementID
				nextElementID++
				queue.Add(ref.target)
			}
		}
	}
	return nil
}

// ParseFromIterator prepares g if necessary, then invokes the axiom's
// recognizer against it. Structural or I/O errors are returned as err; a
// grammar-level mismatch returns match.FAILURE with err == nil. The
// returned offset is the furthest absolute position the iterator's cursor
// reached during the attempt, which survives backtracking and so remains
// useful as a diagnostic even when the final match is FAILURE and the
// cursor itself has been restored to where the parse began.
func (g *Grammar) ParseFromIterator(it *iterator.Iterator) (*match.Match, uint64, error) {
	if !g.prepared {
		if err := g.Prepare(); err != nil {
			return nil, 0, err
		}
	}
	ctx := newContext(g, it)
	if g.memoize {
		ctx.Memo = memo.New()
	}
	if g.Skip != nil {
		applySkip(ctx)
	}
	m := g.Axiom.Recognize(ctx)
	return m, it.Furthest(), nil
}

// ParseFromPath opens a file iterator at path, delegates to
// ParseFromIterator, and closes the iterator on all exits.
func (g *Grammar) ParseFromPath(path string, opts ...iterator.Option) (*match.Match, uint64, error) {
	it, err := iterator.Open(path, opts...)
	if err != nil {
		return nil, 0, err
	}
	defer it.Close()
	return g.ParseFromIterator(it)
}
