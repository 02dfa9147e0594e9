package grammar

import (
	"fmt"
	"regexp"

	"github.com/dynagram/dynagram"
	"github.com/dynagram/dynagram/match"
)

// ProcedureFunc is the user callback backing a Procedure element. It is
// invoked purely for its side effect on ctx.
type ProcedureFunc func(e *ParsingElement, ctx *Context)

// ConditionFunc is the user callback backing a Condition element. It
// decides success or failure itself and returns the corresponding match.
type ConditionFunc func(e *ParsingElement, ctx *Context) *match.Match

// ProcessFunc transforms a fully-recognized, already-processed match tree
// node into a user value, during Grammar's post-recognition process pass.
type ProcessFunc func(m *match.Match, ctx *Context) (interface{}, error)

// FreeMatchFunc is an element's optional payload destructor, invoked when
// a match produced by that element is discarded (e.g. on backtrack).
type FreeMatchFunc func(m *match.Match)

// ParsingElement is the polymorphic recognizer node. It is implemented as
// a single tagged struct rather than one Go type per variant: Kind
// discriminates which fields are meaningful, mirroring the tagged-union +
// function-pointer design of the system this package implements, the
// idiomatic Go rendition of which is a dispatching Recognize method over a
// Kind tag (see recognizeWord/recognizeToken/... in word.go, token.go,
// group.go, rule.go, procedure.go, condition.go).
type ParsingElement struct {
	Kind dynagram.ElementKind
	id   int // BFS visit order from the root (0 for the axiom), assigned by Grammar.Prepare; -1 until then
	name string

	// Word
	word    string
	wordLen int

	// Token
	pattern    *regexp.Regexp
	patternSrc string

	// Group, Rule
	Children *Reference // head of the children reference list

	// Procedure, Condition
	procedure ProcedureFunc
	condition ConditionFunc

	Process   ProcessFunc
	FreeMatch FreeMatchFunc
}

// ID returns the id assigned to e by the owning Grammar's last Prepare
// call, or -1 if the grammar has not been prepared.
func (e *ParsingElement) ID() int {
	if e == nil {
		return -1
	}
	return e.id
}

// Name returns e's debug name, satisfying match.Element.
func (e *ParsingElement) Name() string {
	if e == nil {
		return "<nil>"
	}
	if e.name != "" {
		return e.name
	}
	return fmt.Sprintf("%s#%d", e.Kind, e.id)
}

// SetName sets e's debug name and returns e, for chaining at construction
// time.
func (e *ParsingElement) SetName(name string) *ParsingElement {
	e.name = name
	return e
}

func newElement(kind dynagram.ElementKind) *ParsingElement {
	return &ParsingElement{Kind: kind, id: -1}
}

// NewWord creates a leaf element matching the literal string exactly,
// byte-for-byte, at the iterator's cursor.
func NewWord(literal string) *ParsingElement {
	e := newElement(dynagram.WordKind)
	e.word = literal
	e.wordLen = len(literal)
	return e
}

// NewToken creates a leaf element matching pattern, anchored at the
// iterator's cursor. Regex compile errors fail element creation
// immediately, per spec.
func NewToken(pattern string) (*ParsingElement, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("grammar: invalid token pattern %q: %w", pattern, err)
	}
	e := newElement(dynagram.TokenKind)
	e.pattern = re
	e.patternSrc = pattern
	return e, nil
}

// MustToken is like NewToken but panics on a bad pattern. Intended for
// grammar literals assembled at package-init time.
func MustToken(pattern string) *ParsingElement {
	e, err := NewToken(pattern)
	if err != nil {
		panic(err)
	}
	return e
}

// NewGroup creates an ordered-alternation element over children, tried in
// declaration order; the first to succeed wins. children are coerced with
// Ensure, so either *ParsingElement or *Reference values are accepted.
func NewGroup(children ...interface{}) *ParsingElement {
	e := newElement(dynagram.GroupKind)
	e.Children = chain(children)
	return e
}

// NewRule creates an ordered-concatenation element: all children must
// match in order. children are coerced with Ensure.
func NewRule(children ...interface{}) *ParsingElement {
	e := newElement(dynagram.RuleKind)
	e.Children = chain(children)
	return e
}

// NewProcedure creates a side-effecting element that consumes no input and
// always succeeds with an empty match.
func NewProcedure(fn ProcedureFunc) *ParsingElement {
	e := newElement(dynagram.ProcedureKind)
	e.procedure = fn
	return e
}

// NewCondition creates an element whose success or failure is decided
// entirely by fn.
func NewCondition(fn ConditionFunc) *ParsingElement {
	e := newElement(dynagram.ConditionKind)
	e.condition = fn
	return e
}

func chain(children []interface{}) *Reference {
	var head, tail *Reference
	for _, c := range children {
		ref := Ensure(c)
		ref.next = nil
		if head == nil {
			head = ref
		} else {
			tail.next = ref
		}
		tail = ref
	}
	return head
}

// Recognize dispatches to the variant-specific recognizer for e.Kind,
// consulting ctx.Memo first and filling it afterwards when the grammar
// was built WithMemoization. Procedure and Condition are never memoized,
// since their callbacks may carry side effects on ctx.UData that a cache
// hit would silently skip.
func (e *ParsingElement) Recognize(ctx *Context) *match.Match {
	if ctx.Memo == nil || e.Kind == dynagram.ProcedureKind || e.Kind == dynagram.ConditionKind {
		return e.dispatch(ctx)
	}
	offset := ctx.Iter.Offset()
	if m, ok := ctx.Memo.Get(e.id, offset); ok {
		if match.IsSuccess(m) {
			ctx.Iter.MoveTo(offset + m.Length)
		}
		tracer().Debugf("memo hit for %s at offset %d", e.Name(), offset)
		return m
	}
	m := e.dispatch(ctx)
	ctx.Memo.Put(e.id, offset, m)
	return m
}

func (e *ParsingElement) dispatch(ctx *Context) *match.Match {
	switch e.Kind {
	case dynagram.WordKind:
		return e.recognizeWord(ctx)
	case dynagram.TokenKind:
		return e.recognizeToken(ctx)
	case dynagram.GroupKind:
		return e.recognizeGroup(ctx)
	case dynagram.RuleKind:
		return e.recognizeRule(ctx)
	case dynagram.ProcedureKind:
		return e.recognizeProcedure(ctx)
	case dynagram.ConditionKind:
		return e.recognizeCondition(ctx)
	}
	panic(fmt.Sprintf("grammar: unknown element kind %v", e.Kind))
}
