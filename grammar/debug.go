package grammar

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/dynagram/dynagram"
	"github.com/dynagram/dynagram/match"
)

// Dump prints the element graph reachable from the grammar's axiom (and,
// if set, its skip element) to the terminal, indented by BFS depth. It is
// a debugging aid, not part of the recognition contract; spec.md scopes
// printing utilities out as a requirement, not as a prohibition.
func (g *Grammar) Dump() {
	pterm.Info.Println("grammar " + g.Name)
	dumpElement(g.Axiom, 0, map[*ParsingElement]bool{})
	if g.Skip != nil {
		pterm.Info.Println("skip:")
		dumpElement(g.Skip, 1, map[*ParsingElement]bool{})
	}
}

func dumpElement(e *ParsingElement, depth int, seen map[*ParsingElement]bool) {
	indent := strings.Repeat("  ", depth)
	if seen[e] {
		pterm.Debug.Println(indent + e.Name() + " (seen)")
		return
	}
	seen[e] = true
	switch e.Kind {
	case dynagram.WordKind:
		pterm.Debug.Println(fmt.Sprintf("%s%s Word(%q)", indent, e.Name(), e.word))
	case dynagram.TokenKind:
		pterm.Debug.Println(fmt.Sprintf("%s%s Token(/%s/)", indent, e.Name(), e.patternSrc))
	case dynagram.ProcedureKind:
		pterm.Debug.Println(fmt.Sprintf("%s%s Procedure", indent, e.Name()))
	case dynagram.ConditionKind:
		pterm.Debug.Println(fmt.Sprintf("%s%s Condition", indent, e.Name()))
	default:
		pterm.Debug.Println(fmt.Sprintf("%s%s %s", indent, e.Name(), e.Kind))
		for ref := e.Children; ref != nil; ref = ref.next {
			card := ""
			if ref.cardinality != dynagram.One {
				card = " " + ref.cardinality.String()
			}
			name := ""
			if ref.name != "" {
				name = " as " + ref.name
			}
			pterm.Debug.Println(fmt.Sprintf("%s  ->%s%s", indent, card, name))
			dumpElement(ref.target, depth+2, seen)
		}
	}
}

// DumpMatch prints a match tree, indented by depth, as a debugging aid for
// interactive use (see cmd/dynagram).
func DumpMatch(m *match.Match) {
	m.Walk(func(n *match.Match, depth int) error {
		pterm.Debug.Println(strings.Repeat("  ", depth) + n.String())
		return nil
	})
}
