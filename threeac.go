package threeac

import "fmt"

// --- Tokens of 3AC instruction lines ---------------------------------------

// TokType is a category type for a Token. Token categories are defined by the
// lexer of package instr.
type TokType int

// Token represents a lexeme of a single instruction line.
//
// An example would be a token for a numeric constant:
//
//    TokType = Num         // category for numbers (defined by the lexer)
//    Lexeme  = "3.25"      // lexeme as it appeared in the line
//    Span    = 4…8         // byte positions within the line
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span holds the byte offsets of a token within its line: the first byte
// and the byte just behind the lexeme.
type Span [2]uint64

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// Touches is a predicate: does span other start exactly where s ends?
// Operator runs like "<>" are detected this way.
func (s Span) Touches(other Span) bool {
	return s[1] == other[0]
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
