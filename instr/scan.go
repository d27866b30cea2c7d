package instr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/threeac"
	"github.com/npillmayer/threeac/scanner"
)

// Token categories of 3AC lines.
const (
	Ident threeac.TokType = iota + 1
	Num
	Op
	LBracket
	RBracket
	Comma
	Colon
)

var patterns = []scanner.Pattern{
	{Regex: `([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`, Type: Ident},
	{Regex: `[0-9]+(\.[0-9]+)?`, Type: Num},
	{Regex: `( |\t|\r|\n)+`, Type: scanner.Ignore},
}

// Operators. Multi-char operators are matched longest-first by the DFA.
var ops = []string{"+", "-", "*", "/", "%", "&", "=", "<", ">", "!",
	"==", "!=", "<=", ">=", "**"}

func fixedLexemes() map[string]threeac.TokType {
	fixed := map[string]threeac.TokType{
		"[": LBracket,
		"]": RBracket,
		",": Comma,
		":": Colon,
	}
	for _, op := range ops {
		fixed[op] = Op
	}
	return fixed
}

// Lexer creates a new lexmachine lexer for 3AC lines.
func Lexer() (*scanner.LMAdapter, error) {
	return scanner.NewLMAdapter(patterns, fixedLexemes())
}

var lexer *scanner.LMAdapter
var lexerOnce sync.Once // monitors one-time compilation of the DFA

// Tokenize splits a line (without label prefix) into tokens.
// Input the DFA cannot consume results in an error.
func Tokenize(line string) ([]threeac.Token, error) {
	lexerOnce.Do(func() {
		var err error
		tracer().Debugf("Creating lexer")
		if lexer, err = Lexer(); err != nil {
			panic(fmt.Errorf("cannot create 3AC lexer: %w", err))
		}
	})
	toks, err := lexer.Scan(line)
	if err != nil {
		return toks, fmt.Errorf("illegal input: %w", err)
	}
	return toks, nil
}
