/*
Command dynagram is a small interactive driver for package grammar. It
builds the arithmetic mini-grammar from spec.md §8 —

    NUMBER = [0-9]+
    VAR    = [A-Za-z_]+
    OP     = [+\-/*]
    Value  = Group(NUMBER | VAR)
    Suffix = Rule(OP, Value)
    Expr   = Rule(Value, MANY_OPTIONAL(Suffix))

— and reads lines of input from stdin (interactively, via readline, or
piped), parsing each against Expr and printing the resulting match tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Dynagram Authors

*/
package main

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/dynagram/dynagram"
	"github.com/dynagram/dynagram/grammar"
	"github.com/dynagram/dynagram/iterator"
	"github.com/dynagram/dynagram/match"
)

func exprGrammar() *grammar.Grammar {
	number := grammar.MustToken(`[0-9]+`).SetName("NUMBER")
	variable := grammar.MustToken(`[A-Za-z_]+`).SetName("VAR")
	op := grammar.MustToken(`[+\-*/]`).SetName("OP")

	value := grammar.NewGroup(number, variable).SetName("Value")
	suffix := grammar.NewRule(
		grammar.Ensure(op).SetName("op"),
		grammar.Ensure(value).SetName("rhs"),
	).SetName("Suffix")
	expr := grammar.NewRule(
		grammar.Ensure(value).SetName("lhs"),
		grammar.Ensure(suffix).SetCardinality(dynagram.ManyOptional).SetName("suffixes"),
	).SetName("Expr")

	return grammar.New("arith", expr)
}

func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	gtrace.SyntaxTracer.SetTraceLevel(traceLevel(*tlevel))

	pterm.Info.Println("dynagram — arithmetic mini-grammar REPL")
	g := exprGrammar()
	if err := g.Prepare(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	if args := flag.Args(); len(args) > 0 {
		runLine(g, strings.Join(args, " "))
		return
	}

	repl, err := readline.New("dynagram> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	defer repl.Close()
	for {
		line, err := repl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			break
		}
		if err != nil {
			pterm.Error.Println(err.Error())
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		runLine(g, line)
	}
	println("Good bye!")
}

func runLine(g *grammar.Grammar, line string) {
	it, err := iterator.FromSource(iterator.FromReader(strings.NewReader(line)))
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	defer it.Close()
	m, furthest, err := g.ParseFromIterator(it)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	if !match.IsSuccess(m) {
		pterm.Error.Printf("no match for %q (furthest offset reached: %d)\n", line, furthest)
		return
	}
	pterm.Info.Printf("matched %q, length %d\n", line, m.Length)
	grammar.DumpMatch(m)
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	default:
		return tracing.LevelInfo
	}
}
