package lexer

import (
	"sillyfmt/internal/token"
)

// scanText consumes a maximal text run. The first rune is always taken, so
// the lexer makes progress on every call even for bytes no other rule knows.
func (lx *Lexer) scanText() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	for !lx.cursor.EOF() {
		r, sz := lx.peekRune()
		if lx.endsText(r) {
			break
		}
		lx.cursor.Advance(sz)
	}
	return lx.emit(token.Text, start)
}

func (lx *Lexer) endsText(r rune) bool {
	if isSpace(r) {
		return true
	}
	switch r {
	case '(', ')', '[', ']', '{', '}', '<', '>', ',':
		return true
	case ':', '=':
		if lx.opts.Text == TextStrict {
			return true
		}
	}
	// "a->b" и "a=>b": стрелка не должна прилипать к тексту
	return lx.atArrow()
}

func (lx *Lexer) atArrow() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && (b0 == '-' || b0 == '=') && b1 == '>'
}
