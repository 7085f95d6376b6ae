package token

import (
	"sillyfmt/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLeaf reports whether the token always becomes a leaf node by itself.
func (t Token) IsLeaf() bool {
	switch t.Kind {
	case Time, Text, ColonColon:
		return true
	default:
		return false
	}
}

// Family returns the bracket family of the token, or NoFamily.
func (t Token) Family() Family { return FamilyOf(t.Kind) }
