// Package balance pads text so that every round, square and curly bracket
// has a partner. Angle brackets are left alone: the grammar decides them.
package balance

import (
	"slices"
	"strings"

	"sillyfmt/internal/token"
)

// Balance returns the opens to put in front of text and the closes to put
// after it. A close pairs with the latest unpaired open of its family, so
// "([)" gets a trailing "]" rather than being reordered.
func Balance(text string) (prefix, suffix string) {
	var (
		pending  [token.Angle][]int // открытые скобки по семействам
		unpaired []int              // закрывающие без пары
	)
	for i := 0; i < len(text); i++ {
		fam, open := classify(text[i])
		if fam == token.NoFamily {
			continue
		}
		if open {
			pending[fam] = append(pending[fam], i)
			continue
		}
		if n := len(pending[fam]); n > 0 {
			pending[fam] = pending[fam][:n-1]
			continue
		}
		unpaired = append(unpaired, i)
	}

	var pre strings.Builder
	for _, i := range slices.Backward(unpaired) {
		fam, _ := classify(text[i])
		pre.WriteByte(fam.Open())
	}

	opens := slices.Concat(pending[:]...)
	slices.Sort(opens)
	var suf strings.Builder
	for _, i := range slices.Backward(opens) {
		fam, _ := classify(text[i])
		suf.WriteByte(fam.Close())
	}
	return pre.String(), suf.String()
}

// Apply returns text wrapped in the output of Balance.
func Apply(text string) string {
	prefix, suffix := Balance(text)
	if prefix == "" && suffix == "" {
		return text
	}
	return prefix + text + suffix
}

func classify(b byte) (fam token.Family, open bool) {
	switch b {
	case '(':
		return token.Round, true
	case ')':
		return token.Round, false
	case '[':
		return token.Square, true
	case ']':
		return token.Square, false
	case '{':
		return token.Curly, true
	case '}':
		return token.Curly, false
	}
	return token.NoFamily, false
}
