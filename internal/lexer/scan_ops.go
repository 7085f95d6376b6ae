package lexer

import (
	"sillyfmt/internal/token"
)

// scanOperatorOrPunct matches brackets, the comma and the operator set.
// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
// Operators that start with '<' or '>' are tried before the bare bracket,
// otherwise "<=" could never be produced.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, bool) {
	start := lx.cursor.Mark()

	switch {
	case lx.try3('=', '=', '='):
		return lx.emit(token.StrictEq, start), true
	case lx.try3('<', '=', '>'):
		return lx.emit(token.Spaceship, start), true
	case lx.try2('=', '>'):
		return lx.emit(token.FatArrow, start), true
	case lx.try2('-', '>'):
		return lx.emit(token.Arrow, start), true
	case lx.try2('<', '='):
		return lx.emit(token.LtEq, start), true
	case lx.try2('>', '='):
		return lx.emit(token.GtEq, start), true
	case lx.try2('=', '='):
		return lx.emit(token.EqEq, start), true
	case lx.try2(':', ':'):
		return lx.emit(token.ColonColon, start), true
	}

	var kind token.Kind
	switch lx.cursor.Peek() {
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '<':
		kind = token.LAngle
	case '>':
		kind = token.RAngle
	case ',':
		kind = token.Comma
	case '=':
		kind = token.Assign
	case ':':
		kind = token.Colon
	case '-':
		kind = token.Minus
	case '+':
		kind = token.Plus
	default:
		return token.Token{}, false
	}
	lx.cursor.Bump()
	return lx.emit(kind, start), true
}
