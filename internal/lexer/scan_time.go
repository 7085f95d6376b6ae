package lexer

import (
	"sillyfmt/internal/token"
)

// scanTime matches ([0-1]?[0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])? at the
// cursor. On failure the cursor is left untouched.
func (lx *Lexer) scanTime() (token.Token, bool) {
	start := lx.cursor.Mark()

	hour := lx.hourLen()
	if hour == 0 || lx.cursor.PeekAt(hour) != ':' || !lx.sexagesimalAt(hour+1) {
		return token.Token{}, false
	}
	n := hour + 3
	if lx.cursor.PeekAt(n) == ':' && lx.sexagesimalAt(n+1) {
		n += 3
	}
	lx.cursor.Advance(n)
	return lx.emit(token.Time, start), true
}

// hourLen returns the length of the hour part that is followed by ':',
// preferring two digits, or 0 if none fits.
func (lx *Lexer) hourLen() uint32 {
	b0, b1 := lx.cursor.PeekAt(0), lx.cursor.PeekAt(1)
	if !isDec(b0) {
		return 0
	}
	if isDec(b1) {
		twoDigit := b0 <= '1' || (b0 == '2' && b1 <= '3')
		if twoDigit && lx.cursor.PeekAt(2) == ':' {
			return 2
		}
		return 0
	}
	return 1
}

func (lx *Lexer) sexagesimalAt(n uint32) bool {
	d0, d1 := lx.cursor.PeekAt(n), lx.cursor.PeekAt(n+1)
	return d0 >= '0' && d0 <= '5' && isDec(d1)
}
