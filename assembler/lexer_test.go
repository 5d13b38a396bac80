package assembler_test

import (
	"testing"

	"github.com/lookbusy1344/w16asm/assembler"
)

func mustToken(t *testing.T, lx *assembler.Lexer) assembler.Token {
	t.Helper()
	tok, err := lx.Next()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	return tok
}

func TestLexerNumberBases(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{"0", 0},
		{"0x2A", 42},
		{"0X2a", 42},
		{"0b101", 5},
		{"017", 15},
		{"123", 123},
		{"-5", -5},
		{"-0x10", -16},
	}
	for _, c := range cases {
		lx := assembler.NewLexer([]byte(c.src))
		tok := mustToken(t, lx)
		if tok.Kind != assembler.TokNumberLiteral {
			t.Fatalf("%q: expected NumberLiteral, got %s", c.src, tok.Kind)
		}
		if tok.Number != c.want {
			t.Errorf("%q: got %d, want %d", c.src, tok.Number, c.want)
		}
	}
}

func TestLexerNumberWithoutDigits(t *testing.T) {
	for _, src := range []string{"0x", "0b"} {
		lx := assembler.NewLexer([]byte(src))
		_, err := lx.Next()
		if err == nil || err.Kind != assembler.ErrNumberWithoutDigits {
			t.Fatalf("%q: expected NumberWithoutDigits, got %v", src, err)
		}
	}
}

func TestLexerNumberOutOfRange(t *testing.T) {
	lx := assembler.NewLexer([]byte("100000"))
	_, err := lx.Next()
	if err == nil || err.Kind != assembler.ErrNumberLiteralOutOfRange {
		t.Fatalf("expected NumberLiteralOutOfRange, got %v", err)
	}
}

func TestLexerInvalidMinus(t *testing.T) {
	lx := assembler.NewLexer([]byte("- "))
	_, err := lx.Next()
	if err == nil || err.Kind != assembler.ErrInvalidMinus {
		t.Fatalf("expected InvalidMinus, got %v", err)
	}
}

func TestLexerIdentifierAndLabelDefinition(t *testing.T) {
	lx := assembler.NewLexer([]byte("start: LD"))
	tok := mustToken(t, lx)
	if tok.Kind != assembler.TokLabelDefinition || tok.Text != "start" {
		t.Fatalf("got %+v", tok)
	}
	tok = mustToken(t, lx)
	if tok.Kind != assembler.TokIdentifier || tok.Text != "LD" {
		t.Fatalf("got %+v", tok)
	}
}

func TestLexerLabelRefWithOffset(t *testing.T) {
	lx := assembler.NewLexer([]byte("target+0x10"))
	tok := mustToken(t, lx)
	if tok.Kind != assembler.TokIdentifier || tok.Text != "target+0x10" {
		t.Fatalf("got %+v", tok)
	}
}

func TestLexerDirective(t *testing.T) {
	lx := assembler.NewLexer([]byte(".ORG 0"))
	tok := mustToken(t, lx)
	if tok.Kind != assembler.TokDirective || tok.Text != "ORG" {
		t.Fatalf("got %+v", tok)
	}
}

func TestLexerStringEscapes(t *testing.T) {
	lx := assembler.NewLexer([]byte(`"a\nb\x41"`))
	tok := mustToken(t, lx)
	if tok.Kind != assembler.TokStringLiteral {
		t.Fatalf("got %+v", tok)
	}
	want := "a\nbA"
	if tok.Text != want {
		t.Errorf("got %q, want %q", tok.Text, want)
	}
	if !tok.ZeroTerminate {
		t.Errorf("expected ZeroTerminate")
	}
}

func TestLexerUnterminatedStringReportsOpeningLine(t *testing.T) {
	lx := assembler.NewLexer([]byte("\n\n\"abc"))
	_, err := lx.Next()
	if err == nil || err.Kind != assembler.ErrUnterminatedString {
		t.Fatalf("expected UnterminatedString, got %v", err)
	}
	if err.Line != 3 {
		t.Errorf("expected error on line 3, got %d", err.Line)
	}
}

func TestLexerCharacterLiteralWithOffset(t *testing.T) {
	lx := assembler.NewLexer([]byte("'A'+2"))
	tok := mustToken(t, lx)
	if tok.Kind != assembler.TokCharacterLiteral {
		t.Fatalf("got %+v", tok)
	}
	if tok.Number != 'A' || !tok.HasOffset || tok.Offset != 2 {
		t.Errorf("got %+v", tok)
	}
}

func TestLexerNegatedCharacterLiteral(t *testing.T) {
	lx := assembler.NewLexer([]byte("-'A'"))
	tok := mustToken(t, lx)
	if tok.Kind != assembler.TokCharacterLiteral || tok.Number != -65 {
		t.Fatalf("got %+v", tok)
	}
}

func TestLexerImmediate(t *testing.T) {
	lx := assembler.NewLexer([]byte("#5"))
	tok := mustToken(t, lx)
	if tok.Kind != assembler.TokImmediateRef || tok.Text != "#5" {
		t.Fatalf("got %+v", tok)
	}
	if tok.Inner == nil || tok.Inner.Kind != assembler.TokNumberLiteral || tok.Inner.Number != 5 {
		t.Fatalf("got inner %+v", tok.Inner)
	}
}

func TestLexerComment(t *testing.T) {
	lx := assembler.NewLexer([]byte("; a comment\nLD"))
	tok := mustToken(t, lx)
	if tok.Kind != assembler.TokIdentifier || tok.Text != "LD" || tok.Line != 2 {
		t.Fatalf("got %+v", tok)
	}
}
