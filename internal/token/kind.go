package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero Kind; the lexer never produces it.
	Invalid Kind = iota
	// EOF marks the end of the input.
	EOF

	// LParen represents the left parenthesis.
	LParen // (
	// RParen represents the right parenthesis.
	RParen // )
	// LBracket represents the left square bracket.
	LBracket // [
	// RBracket represents the right square bracket.
	RBracket // ]
	// LBrace represents the left curly brace.
	LBrace // {
	// RBrace represents the right curly brace.
	RBrace // }
	// LAngle represents '<' before the grammar decides what it is.
	LAngle // <
	// RAngle represents '>' before the grammar decides what it is.
	RAngle // >

	// Comma separates the groups of a sequence.
	Comma // ,

	// StrictEq represents the strict equality symbol.
	StrictEq // ===
	// Spaceship represents the three-way comparison symbol.
	Spaceship // <=>
	// FatArrow represents the fat arrow symbol.
	FatArrow // =>
	// Arrow represents the arrow symbol.
	Arrow // ->
	// LtEq represents the less-or-equal symbol.
	LtEq // <=
	// GtEq represents the greater-or-equal symbol.
	GtEq // >=
	// EqEq represents the equality symbol.
	EqEq // ==
	// Assign represents the single equals symbol.
	Assign // =
	// Colon represents the colon symbol.
	Colon // :
	// Minus represents the minus symbol.
	Minus // -
	// Plus represents the plus symbol.
	Plus // +

	// ColonColon is the only non-symbol operator lexeme; it never chains.
	ColonColon // ::

	// Time represents an H:MM or H:MM:SS literal.
	Time
	// Text represents a run of free-form characters.
	Text
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	LParen:     "LParen",
	RParen:     "RParen",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	LAngle:     "LAngle",
	RAngle:     "RAngle",
	Comma:      "Comma",
	StrictEq:   "StrictEq",
	Spaceship:  "Spaceship",
	FatArrow:   "FatArrow",
	Arrow:      "Arrow",
	LtEq:       "LtEq",
	GtEq:       "GtEq",
	EqEq:       "EqEq",
	Assign:     "Assign",
	Colon:      "Colon",
	Minus:      "Minus",
	Plus:       "Plus",
	ColonColon: "ColonColon",
	Time:       "Time",
	Text:       "Text",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsEOF reports whether the kind is the end-of-input marker.
func (k Kind) IsEOF() bool { return k == EOF }

// IsOpen reports whether the kind is an opening bracket of any family.
func (k Kind) IsOpen() bool {
	switch k {
	case LParen, LBracket, LBrace, LAngle:
		return true
	default:
		return false
	}
}

// IsClose reports whether the kind is a closing bracket of any family.
func (k Kind) IsClose() bool {
	switch k {
	case RParen, RBracket, RBrace, RAngle:
		return true
	default:
		return false
	}
}

// IsAngle reports whether the kind is one of the conflicting '<' '>' pair.
func (k Kind) IsAngle() bool { return k == LAngle || k == RAngle }

// IsSymbol reports whether the kind belongs to the fixed operator set
// (everything that may head a binary op, excluding the angle pair).
func (k Kind) IsSymbol() bool {
	switch k {
	case StrictEq, Spaceship, FatArrow, Arrow, LtEq, GtEq, EqEq, Assign, Colon, Minus, Plus:
		return true
	default:
		return false
	}
}
