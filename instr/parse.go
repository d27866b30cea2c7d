package instr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/threeac"
)

// SyntaxError is returned for lines which match no instruction form.
type SyntaxError struct {
	Source string
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("Unrecognized instruction '%s' (%s)", strings.TrimSpace(e.Source), e.Reason)
	}
	return fmt.Sprintf("Unrecognized instruction '%s'", strings.TrimSpace(e.Source))
}

// SplitLabel separates a label prefix from the rest of a line.
// The label is the text before the first colon, trimmed. If the line has
// no colon, label is empty and rest is the complete line.
func SplitLabel(line string) (label string, rest string) {
	before, after, found := strings.Cut(line, ":")
	if !found {
		return "", line
	}
	return strings.TrimSpace(before), after
}

// Classify determines the kind of a line and extracts its operands.
// Empty lines and lines carrying only a label are classified as NoOp.
func Classify(line string) (*Instruction, error) {
	label, rest := SplitLabel(line)
	if strings.TrimSpace(rest) == "" {
		return &Instruction{Kind: NoOp, Label: label, Source: line}, nil
	}
	toks, err := Tokenize(rest)
	if err != nil {
		tracer().Debugf("cannot tokenize %q: %v", rest, err)
		return nil, &SyntaxError{Source: line, Reason: err.Error()}
	}
	ins := classifyTokens(toks, matchers)
	if ins == nil {
		return nil, &SyntaxError{Source: line}
	}
	ins.Label = label
	ins.Source = line
	tracer().Debugf("%q classified as %s", line, ins.Kind)
	return ins, nil
}

// --- Matchers --------------------------------------------------------------

// A matcher tries to parse a token list as one instruction kind. It must
// consume all tokens to match.
type matcher struct {
	kind  Kind
	match func(p *parser) *Instruction
}

var matchers []matcher       // all forms, in precedence order
var actionMatchers []matcher // forms allowed as the action of an if

func init() {
	matchers = []matcher{
		{If, matchIf},
		{Print, matchPrint},
		{Return, matchReturn},
		{Goto, matchGoto},
		{Call, matchCall},
		{Param, matchParam},
		{BeginFunc, matchBeginFunc},
		{EndFunc, matchEndFunc},
		{Assign, matchAssignOrExpr},
	}
	for _, m := range matchers {
		if m.kind != BeginFunc && m.kind != EndFunc {
			actionMatchers = append(actionMatchers, m)
		}
	}
}

func classifyTokens(toks []threeac.Token, ms []matcher) *Instruction {
	for _, m := range ms {
		p := &parser{toks: toks}
		if ins := m.match(p); ins != nil && p.atEnd() {
			return ins
		}
	}
	return nil
}

func matchIf(p *parser) *Instruction {
	if !p.keyword("if") {
		return nil
	}
	cond := p.expr()
	if cond == nil || p.atEnd() {
		return nil
	}
	action := classifyTokens(p.rest(), actionMatchers)
	if action == nil {
		return nil
	}
	p.pos = len(p.toks)
	return &Instruction{Kind: If, Cond: cond, Action: action}
}

func matchPrint(p *parser) *Instruction {
	if !p.keyword("print") {
		return nil
	}
	x := p.expr()
	if x == nil {
		return nil
	}
	return &Instruction{Kind: Print, X: x}
}

func matchReturn(p *parser) *Instruction {
	if !p.keyword("return") {
		return nil
	}
	if p.atEnd() {
		return &Instruction{Kind: Return}
	}
	x := p.expr()
	if x == nil {
		return nil
	}
	return &Instruction{Kind: Return, X: x}
}

func matchGoto(p *parser) *Instruction {
	if !p.keyword("goto") {
		return nil
	}
	label, ok := p.ident()
	if !ok {
		return nil
	}
	return &Instruction{Kind: Goto, Name: label}
}

// call f, n     ⇒ procedure f, call-site count n, default result slot
// call r, f     ⇒ result variable r, procedure f
func matchCall(p *parser) *Instruction {
	if !p.keyword("call") {
		return nil
	}
	return p.callTail()
}

func (p *parser) callTail() *Instruction {
	first, ok := p.ident()
	if !ok || !p.punct(Comma) {
		return nil
	}
	if n, ok := p.integer(); ok {
		return &Instruction{Kind: Call, Name: first, Count: n}
	}
	if second, ok := p.ident(); ok {
		return &Instruction{Kind: Call, Name: second, Result: first, Count: -1}
	}
	return nil
}

func matchParam(p *parser) *Instruction {
	if !p.keyword("param") {
		return nil
	}
	x := p.expr()
	if x == nil {
		return nil
	}
	return &Instruction{Kind: Param, X: x}
}

func matchBeginFunc(p *parser) *Instruction {
	if !p.keyword("BeginFunc") {
		return nil
	}
	name, ok := p.ident()
	if !ok || !p.punct(Comma) {
		return nil
	}
	n, ok := p.integer()
	if !ok {
		return nil
	}
	return &Instruction{Kind: BeginFunc, Name: name, Count: n}
}

func matchEndFunc(p *parser) *Instruction {
	if !p.keyword("EndFunc") {
		return nil
	}
	return &Instruction{Kind: EndFunc}
}

// matchAssignOrExpr is the fallback form: either `lvalue = expr`,
// `var = call f, n` or a bare expression.
func matchAssignOrExpr(p *parser) *Instruction {
	eq := -1
	for i, tok := range p.toks {
		if tok.Lexeme() == "=" {
			eq = i
			break
		}
	}
	if eq < 0 {
		x := p.expr()
		if x == nil {
			return nil
		}
		return &Instruction{Kind: Expression, X: x}
	}
	lhs := &parser{toks: p.toks[:eq]}
	target := lhs.lvalue()
	if target == nil || !lhs.atEnd() {
		return nil
	}
	p.pos = eq + 1
	if target.Deref == 0 && target.Index == nil && p.keyword("call") {
		ins := p.callTail()
		if ins == nil || ins.Result != "" {
			return nil
		}
		ins.Result = target.Name
		return ins
	}
	x := p.expr()
	if x == nil {
		return nil
	}
	return &Instruction{Kind: Assign, Target: target, X: x}
}

// --- Recursive descent over a token list -----------------------------------

type parser struct {
	toks []threeac.Token
	pos  int
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.toks)
}

func (p *parser) peek() threeac.Token {
	if p.atEnd() {
		return nil
	}
	return p.toks[p.pos]
}

func (p *parser) rest() []threeac.Token {
	return p.toks[p.pos:]
}

func (p *parser) is(typ threeac.TokType) bool {
	tok := p.peek()
	return tok != nil && tok.TokType() == typ
}

func (p *parser) keyword(kw string) bool {
	if p.is(Ident) && p.peek().Lexeme() == kw {
		p.pos++
		return true
	}
	return false
}

func (p *parser) punct(typ threeac.TokType) bool {
	if p.is(typ) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) ident() (string, bool) {
	if !p.is(Ident) {
		return "", false
	}
	p.pos++
	return p.toks[p.pos-1].Lexeme(), true
}

func (p *parser) integer() (int, bool) {
	if !p.is(Num) {
		return 0, false
	}
	n, err := strconv.Atoi(p.peek().Lexeme())
	if err != nil {
		return 0, false
	}
	p.pos++
	return n, true
}

// opRun reads an operator. Operator tokens without whitespace in between
// form a single operator, e.g. "<" ">" ⇒ "<>".
func (p *parser) opRun() (string, bool) {
	if !p.is(Op) {
		return "", false
	}
	tok := p.peek()
	op := tok.Lexeme()
	span := tok.Span()
	p.pos++
	for p.is(Op) && span.Touches(p.peek().Span()) {
		op += p.peek().Lexeme()
		span = span.Extend(p.peek().Span())
		p.pos++
	}
	return op, true
}

// expr parses
//
//    Expr    ::=  Operand Op Operand  |  Op Operand  |  Operand
//
// A missing operand at the end of input is represented by an empty operand.
func (p *parser) expr() *Expr {
	if op, ok := p.opRun(); ok {
		y := p.operand()
		if y == nil {
			return nil
		}
		return &Expr{Op: op, Right: y}
	}
	x := p.operand()
	if x == nil {
		return nil
	}
	if x.IsEmpty() {
		return &Expr{Right: x}
	}
	if p.is(Op) && p.peek().Lexeme() != "=" {
		op, _ := p.opRun()
		y := p.operand()
		if y == nil {
			return nil
		}
		return &Expr{Op: op, Left: x, Right: y}
	}
	return &Expr{Right: x}
}

// operand parses
//
//    Operand ::=  number  |  ident  |  ident '[' Expr ']'
//
func (p *parser) operand() *Operand {
	if p.atEnd() {
		return &Operand{}
	}
	tok := p.peek()
	switch tok.TokType() {
	case Num:
		f, err := strconv.ParseFloat(tok.Lexeme(), 64)
		if err != nil {
			return nil
		}
		p.pos++
		return &Operand{Literal: f, IsLiteral: true, lexeme: tok.Lexeme()}
	case Ident:
		p.pos++
		o := &Operand{Name: tok.Lexeme()}
		if p.punct(LBracket) {
			if o.Index = p.expr(); o.Index == nil || !p.punct(RBracket) {
				return nil
			}
		}
		return o
	}
	return nil
}

// lvalue parses
//
//    Lvalue  ::=  '*'* ident  |  ident '[' Expr ']'
//
func (p *parser) lvalue() *Lvalue {
	lv := &Lvalue{}
	for p.is(Op) {
		lex := p.peek().Lexeme()
		if strings.Trim(lex, "*") != "" {
			return nil
		}
		lv.Deref += len(lex)
		p.pos++
	}
	name, ok := p.ident()
	if !ok {
		return nil
	}
	lv.Name = name
	if p.punct(LBracket) {
		if lv.Deref > 0 {
			return nil
		}
		if lv.Index = p.expr(); lv.Index == nil || !p.punct(RBracket) {
			return nil
		}
	}
	return lv
}
