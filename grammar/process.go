package grammar

import "github.com/dynagram/dynagram/match"

// Process implements spec §4.10, the post-recognition process pass. It
// walks the match tree in post-order — children before parent, earlier
// siblings before later ones — and for every match whose originating
// element defines a Process callback, invokes it and stores the resulting
// value back into the match's Value field. Matches without a Process
// callback pass through with Value left nil; this is how an implementer
// builds an AST out of a raw match tree.
func Process(root *match.Match, ctx *Context) error {
	if !match.IsSuccess(root) {
		return nil
	}
	return processChain(root, ctx)
}

func processChain(head *match.Match, ctx *Context) error {
	for m := head; m != nil; m = m.Next {
		if m.Child != nil {
			if err := processChain(m.Child, ctx); err != nil {
				return err
			}
		}
		pe, ok := m.Element.(*ParsingElement)
		if !ok || pe.Process == nil {
			continue
		}
		v, err := pe.Process(m, ctx)
		if err != nil {
			return err
		}
		m.Value = v
	}
	return nil
}
