package scanner

import (
	"strings"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/threeac"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Pattern pairs a regular expression with the token type of its matches.
type Pattern struct {
	Regex string
	Type  threeac.TokType
}

// Ignore is the token type of patterns whose matches are dropped, e.g. whitespace.
const Ignore threeac.TokType = -2

// LMAdapter wraps a compiled lexmachine DFA.
type LMAdapter struct {
	lexer *lexmachine.Lexer
}

// NewLMAdapter compiles a DFA from a list of patterns and a table of fixed
// lexemes (operators, punctuation). For matches of equal length, patterns
// win over fixed lexemes, earlier patterns over later ones.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(patterns []Pattern, fixed map[string]threeac.TokType) (*LMAdapter, error) {
	lexer := lexmachine.NewLexer()
	for _, p := range patterns {
		lexer.Add([]byte(p.Regex), action(p.Type))
	}
	for _, lexeme := range sortedLexemes(fixed) {
		lexer.Add([]byte(Quote(lexeme)), action(fixed[lexeme]))
	}
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	tracer().Debugf("compiled DFA: %d patterns, %d fixed lexemes", len(patterns), len(fixed))
	return &LMAdapter{lexer: lexer}, nil
}

// Quote escapes every character of a fixed lexeme, making it a regular
// expression matching just the lexeme.
func Quote(lexeme string) string {
	var b strings.Builder
	for _, r := range lexeme {
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	return b.String()
}

// DFA construction has to be deterministic, so we do not add lexemes in map order.
func sortedLexemes(fixed map[string]threeac.TokType) []string {
	keys := make([]interface{}, 0, len(fixed))
	for k := range fixed {
		keys = append(keys, k)
	}
	utils.Sort(keys, utils.StringComparator)
	lexemes := make([]string, len(keys))
	for i, k := range keys {
		lexemes[i] = k.(string)
	}
	return lexemes
}

func action(typ threeac.TokType) lexmachine.Action {
	if typ == Ignore {
		return skip
	}
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// Scanner creates a tokenizer for a given input.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{onError: logError}, err
	}
	return &LMScanner{scanner: s, onError: logError}, nil
}

// Scan tokenizes a complete input. Unconsumed input is skipped; the first
// error encountered is returned along with the tokens read.
func (lm *LMAdapter) Scan(input string) ([]threeac.Token, error) {
	sc, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	var first error
	sc.SetErrorHandler(func(e error) {
		if first == nil {
			first = e
		}
	})
	return Drain(sc), first
}

// LMScanner is a tokenizer driven by a lexmachine DFA.
type LMScanner struct {
	scanner *lexmachine.Scanner
	onError func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
// A nil handler restores logging of errors.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	lms.onError = h
}

var eofToken = MakeDefaultToken(EOF, "", threeac.Span{})

// NextToken is part of the Tokenizer interface.
//
// Unconsumed input is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() threeac.Token {
	if lms.scanner == nil {
		return eofToken
	}
	for {
		tok, err, eof := lms.scanner.Next()
		if eof {
			return eofToken
		}
		if err != nil {
			lms.onError(err)
			ui, ok := err.(*machines.UnconsumedInput)
			if !ok {
				return eofToken
			}
			lms.scanner.TC = ui.FailTC
			continue
		}
		token := tok.(*lexmachine.Token)
		from := uint64(token.TC)
		return MakeDefaultToken(
			threeac.TokType(token.Type),
			string(token.Lexeme),
			threeac.Span{from, from + uint64(len(token.Lexeme))},
		)
	}
}
