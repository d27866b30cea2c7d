package scanner

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/threeac"
)

const (
	tokID threeac.TokType = iota + 1
	tokNum
	tokOp
	tokPunct
)

func testAdapter(t *testing.T) *LMAdapter {
	patterns := []Pattern{
		{Regex: `([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`, Type: tokID},
		{Regex: `[0-9]+(\.[0-9]+)?`, Type: tokNum},
		{Regex: `( |\t|\r)+`, Type: Ignore},
	}
	fixed := map[string]threeac.TokType{"[": tokPunct, "]": tokPunct, ",": tokPunct, ":": tokPunct}
	for _, op := range []string{"=", "+", "-", "*", "/", "<", ">", "==", "<=", "**"} {
		fixed[op] = tokOp
	}
	LM, err := NewLMAdapter(patterns, fixed)
	if err != nil {
		t.Fatal(err)
	}
	return LM
}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.scanner")
	defer teardown()
	//
	inputs := []struct {
		line  string
		count int
	}{
		{"1", 1},
		{"a = b + 12", 5},
		{"L1: goto L2", 4},
		{"x[i] = *p", 7},
		{"if a <= 3 goto end", 6},
	}
	LM := testAdapter(t)
	for i, input := range inputs {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input.line)
		if err != nil {
			t.Fatal(err)
		}
		sc.SetErrorHandler(func(e error) {
			t.Errorf("unexpected scanner error: %v", e)
		})
		token := sc.NextToken()
		count := 0
		for token.TokType() != EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != input.count {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, input.count, count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.scanner")
	defer teardown()
	//
	toks, err := testAdapter(t).Scan("a <> b")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 4 {
		t.Fatalf("expected 4 tokens, have %d", len(toks))
	}
	if !toks[1].Span().Touches(toks[2].Span()) {
		t.Errorf("expected '<' and '>' to touch, spans are %v and %v", toks[1].Span(), toks[2].Span())
	}
	if toks[0].Span().Touches(toks[1].Span()) {
		t.Errorf("expected 'a' and '<' to be separated by whitespace")
	}
}

func TestLMLongestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.scanner")
	defer teardown()
	//
	toks, _ := testAdapter(t).Scan("x=**p")
	if len(toks) != 4 || toks[2].Lexeme() != "**" {
		t.Errorf("expected '**' to be a single token, have %v", toks)
	}
	if toks[2].TokType() != tokOp {
		t.Errorf("expected '**' to be an operator, have type %d", toks[2].TokType())
	}
}

func TestLMUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threeac.scanner")
	defer teardown()
	//
	toks, err := testAdapter(t).Scan("a $ b")
	if err == nil {
		t.Errorf("expected scanner to report an error for '$'")
	}
	if len(toks) != 2 {
		t.Errorf("expected scanner to skip '$' and produce 2 tokens, have %d", len(toks))
	}
}

func TestQuote(t *testing.T) {
	if q := Quote("**"); q != `\*\*` {
		t.Errorf("expected \\*\\*, have %s", q)
	}
}
