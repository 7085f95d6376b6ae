package token

// Family groups an opening bracket with its closing partner.
type Family uint8

const (
	// NoFamily is returned for non-bracket kinds.
	NoFamily Family = iota
	Round         // ( )
	Square        // [ ]
	Curly         // { }
	Angle         // < >
)

func (f Family) String() string {
	switch f {
	case Round:
		return "()"
	case Square:
		return "[]"
	case Curly:
		return "{}"
	case Angle:
		return "<>"
	default:
		return "none"
	}
}

// Open returns the opening character of the family, or 0.
func (f Family) Open() byte {
	switch f {
	case Round:
		return '('
	case Square:
		return '['
	case Curly:
		return '{'
	case Angle:
		return '<'
	default:
		return 0
	}
}

// Close returns the closing character of the family, or 0.
func (f Family) Close() byte {
	switch f {
	case Round:
		return ')'
	case Square:
		return ']'
	case Curly:
		return '}'
	case Angle:
		return '>'
	default:
		return 0
	}
}

// FamilyOf returns the bracket family of k, or NoFamily.
func FamilyOf(k Kind) Family {
	switch k {
	case LParen, RParen:
		return Round
	case LBracket, RBracket:
		return Square
	case LBrace, RBrace:
		return Curly
	case LAngle, RAngle:
		return Angle
	default:
		return NoFamily
	}
}
