package token_test

import (
	"testing"

	"sillyfmt/internal/token"
)

func TestSymbolClassification(t *testing.T) {
	symbols := []token.Kind{
		token.StrictEq, token.Spaceship, token.FatArrow, token.Arrow,
		token.LtEq, token.GtEq, token.EqEq, token.Assign, token.Colon,
		token.Minus, token.Plus,
	}
	for _, k := range symbols {
		if !k.IsSymbol() {
			t.Errorf("%v should be a symbol", k)
		}
	}
	non := []token.Kind{token.ColonColon, token.LAngle, token.RAngle, token.Comma, token.Text, token.Time}
	for _, k := range non {
		if k.IsSymbol() {
			t.Errorf("%v must NOT be a symbol", k)
		}
	}
}

func TestBracketFamilies(t *testing.T) {
	pairs := []struct {
		open, close token.Kind
		family      token.Family
		chars       string
	}{
		{token.LParen, token.RParen, token.Round, "()"},
		{token.LBracket, token.RBracket, token.Square, "[]"},
		{token.LBrace, token.RBrace, token.Curly, "{}"},
		{token.LAngle, token.RAngle, token.Angle, "<>"},
	}
	for _, p := range pairs {
		t.Run(p.chars, func(t *testing.T) {
			if !p.open.IsOpen() || p.open.IsClose() {
				t.Errorf("%v should be an opening bracket only", p.open)
			}
			if !p.close.IsClose() || p.close.IsOpen() {
				t.Errorf("%v should be a closing bracket only", p.close)
			}
			if token.FamilyOf(p.open) != p.family || token.FamilyOf(p.close) != p.family {
				t.Errorf("family mismatch for %s", p.chars)
			}
			if got := string([]byte{p.family.Open(), p.family.Close()}); got != p.chars {
				t.Errorf("family chars = %q, want %q", got, p.chars)
			}
			if p.family.String() != p.chars {
				t.Errorf("String() = %q", p.family.String())
			}
		})
	}
	if token.FamilyOf(token.Comma) != token.NoFamily {
		t.Error("comma has no bracket family")
	}
}

func TestKindString(t *testing.T) {
	if token.Spaceship.String() != "Spaceship" {
		t.Errorf("got %q", token.Spaceship.String())
	}
	if token.Kind(250).String() != "Kind(?)" {
		t.Errorf("unknown kinds should not panic")
	}
}

func TestIsLeaf(t *testing.T) {
	for _, k := range []token.Kind{token.Text, token.Time, token.ColonColon} {
		if !(token.Token{Kind: k}).IsLeaf() {
			t.Errorf("%v should be a leaf", k)
		}
	}
	if (token.Token{Kind: token.Assign}).IsLeaf() {
		t.Error("operators are not unconditional leaves")
	}
}
