package instr

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.instr")
	defer teardown()
	//
	toks, err := Tokenize("t1 = a[i] <= 3.5")
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"t1", "=", "a", "[", "i", "]", "<=", "3.5"}
	if len(toks) != len(expected) {
		t.Fatalf("expected %d tokens, have %d", len(expected), len(toks))
	}
	for i, tok := range toks {
		if tok.Lexeme() != expected[i] {
			t.Errorf("token #%d: expected %q, have %q", i, expected[i], tok.Lexeme())
		}
	}
	if toks[6].TokType() != Op || toks[7].TokType() != Num || toks[0].TokType() != Ident {
		t.Errorf("unexpected token categories: %v", toks)
	}
}

func TestTokenizeIllegal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.instr")
	defer teardown()
	//
	if _, err := Tokenize("a = b $ c"); err == nil {
		t.Errorf("expected '$' to be rejected by the lexer")
	}
}

func TestSplitLabel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.instr")
	defer teardown()
	//
	label, rest := SplitLabel("  L1 : goto L2")
	if label != "L1" || rest != " goto L2" {
		t.Errorf("expected label L1 and rest ' goto L2', have %q and %q", label, rest)
	}
	label, rest = SplitLabel("a = 1")
	if label != "" || rest != "a = 1" {
		t.Errorf("expected no label, have %q", label)
	}
}

func TestClassifyKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.instr")
	defer teardown()
	//
	tests := []struct {
		line string
		kind Kind
	}{
		{"", NoOp},
		{"   ", NoOp},
		{"L1:", NoOp},
		{"L1:   ", NoOp},
		{"if a > 3 goto L", If},
		{"print 3 * 4", Print},
		{"return", Return},
		{"return t1", Return},
		{"goto L2", Goto},
		{"call fact, 1", Call},
		{"call r, fact", Call},
		{"x = call fact, 1", Call},
		{"param a + 1", Param},
		{"BeginFunc fact, 1", BeginFunc},
		{"EndFunc", EndFunc},
		{"a = 3 + 4", Assign},
		{"x[2] = 5", Assign},
		{"*p = 9", Assign},
		{"a + 1", Expression},
		{"L3: a", Expression},
		{"if = 3", Assign},
	}
	for _, test := range tests {
		ins, err := Classify(test.line)
		if err != nil {
			t.Errorf("%q: unexpected error %v", test.line, err)
			continue
		}
		if ins.Kind != test.kind {
			t.Errorf("%q: expected kind %s, have %s", test.line, test.kind, ins.Kind)
		}
	}
}

func TestClassifyUnrecognized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.instr")
	defer teardown()
	//
	lines := []string{
		"a = b = c",
		"goto L extra",
		"BeginFunc f",
		"x[] = 1",
		"&x = 3",
		"hello world",
		"a = 1 ; comment",
	}
	for _, line := range lines {
		ins, err := Classify(line)
		if err == nil {
			t.Errorf("%q: expected a syntax error, got %s", line, ins)
			continue
		}
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("%q: expected *SyntaxError, have %T", line, err)
		}
	}
}

func TestClassifyOperands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.instr")
	defer teardown()
	//
	ins, _ := Classify("L7: t2 = a[i] % 2")
	if ins.Label != "L7" {
		t.Errorf("expected label L7, have %q", ins.Label)
	}
	if ins.Target.Name != "t2" || ins.Target.Deref != 0 {
		t.Errorf("unexpected target %v", ins.Target)
	}
	x := ins.X
	if x.Op != "%" || !x.Left.IsIndexed() || x.Left.Name != "a" || x.Left.Index.Right.Name != "i" {
		t.Errorf("unexpected expression %v", x)
	}
	if !x.Right.IsLiteral || x.Right.Literal != 2 {
		t.Errorf("expected literal 2, have %v", x.Right)
	}
}

func TestClassifyPointers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.instr")
	defer teardown()
	//
	ins, _ := Classify("**pp = 3")
	if ins.Target.Deref != 2 || ins.Target.Name != "pp" {
		t.Errorf("expected depth-2 target pp, have %v", ins.Target)
	}
	ins, _ = Classify("***ppp = 3")
	if ins.Target.Deref != 3 {
		t.Errorf("expected depth-3 target, have %v", ins.Target)
	}
	ins, _ = Classify("p = &v")
	if !ins.X.IsUnary() || ins.X.Op != "&" || ins.X.Right.Name != "v" {
		t.Errorf("expected unary &v, have %v", ins.X)
	}
	ins, _ = Classify("y = **q")
	if ins.X.Op != "**" {
		t.Errorf("expected unary **, have %q", ins.X.Op)
	}
}

func TestClassifyOperatorRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.instr")
	defer teardown()
	//
	ins, err := Classify("x = a <> b")
	if err != nil {
		t.Fatal(err)
	}
	if ins.X.Op != "<>" {
		t.Errorf("expected operator run '<>', have %q", ins.X.Op)
	}
	ins, _ = Classify("x=-b")
	if ins.Kind != Assign || !ins.X.IsUnary() || ins.X.Op != "-" {
		t.Errorf("expected assignment of -b, have %s", ins)
	}
	ins, _ = Classify("t = a==b")
	if ins.Kind != Assign || ins.X.Op != "==" {
		t.Errorf("expected assignment of a==b, have %s", ins)
	}
}

func TestClassifyIf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.instr")
	defer teardown()
	//
	ins, _ := Classify("if a > 3 goto L")
	if ins.Cond.Op != ">" || ins.Action.Kind != Goto || ins.Action.Name != "L" {
		t.Errorf("unexpected if: %s", ins)
	}
	ins, _ = Classify("if t x = 1")
	if !ins.Cond.IsAtomic() || ins.Action.Kind != Assign {
		t.Errorf("unexpected if: %s", ins)
	}
	if _, err := Classify("if a BeginFunc f, 1"); err == nil {
		t.Errorf("expected BeginFunc to be rejected as action of if")
	}
}

func TestClassifyCall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.instr")
	defer teardown()
	//
	ins, _ := Classify("call fact, 2")
	if ins.Name != "fact" || ins.Count != 2 || ins.Result != "" {
		t.Errorf("unexpected call: %+v", ins)
	}
	ins, _ = Classify("call r, fact")
	if ins.Name != "fact" || ins.Count != -1 || ins.Result != "r" {
		t.Errorf("unexpected call: %+v", ins)
	}
	ins, _ = Classify("y = call fact, 1")
	if ins.Name != "fact" || ins.Count != 1 || ins.Result != "y" {
		t.Errorf("unexpected call: %+v", ins)
	}
}

func TestClassifyMissingOperand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.instr")
	defer teardown()
	//
	ins, err := Classify("x = 3 +")
	if err != nil {
		t.Fatal(err)
	}
	if !ins.X.Right.IsEmpty() {
		t.Errorf("expected empty right operand, have %v", ins.X.Right)
	}
	ins, _ = Classify("x =")
	if !ins.X.IsAtomic() || !ins.X.Right.IsEmpty() {
		t.Errorf("expected empty expression, have %v", ins.X)
	}
}

func TestInstructionString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.instr")
	defer teardown()
	//
	ins, _ := Classify("L1:  if a[i+1] <= 7 print -x")
	if s := ins.String(); s != "L1: if a[i + 1] <= 7 print -x" {
		t.Errorf("unexpected string form %q", s)
	}
}
