/*
Package scanner defines an interface for tokenizers of 3AC instruction lines.

The default implementation is an adapter for lexmachine. Clients hand in the
regular expressions of their language; the adapter compiles them into a DFA
once and creates a scanner for every line to tokenize.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/threeac"
)

// tracer traces with key 'threeac.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("threeac.scanner")
}

// EOF is the token type signalling the end of input.
const EOF = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() threeac.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, produced by the
// lexmachine scanner.
type DefaultToken struct {
	kind   threeac.TokType
	lexeme string
	Val    interface{}
	span   threeac.Span
}

// MakeDefaultToken creates a token from its parts.
func MakeDefaultToken(typ threeac.TokType, lexeme string, span threeac.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() threeac.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() threeac.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d %q %v>", t.kind, t.lexeme, t.span)
}

// Drain reads all tokens from a tokenizer until EOF.
func Drain(t Tokenizer) []threeac.Token {
	var toks []threeac.Token
	for {
		tok := t.NextToken()
		if tok.TokType() == EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}
