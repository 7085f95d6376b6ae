package lexer

import "fmt"

// TextRule selects where a text run ends.
type TextRule uint8

const (
	// TextStrict ends a run at whitespace, brackets, ',', ':', '=', '<', '>'.
	TextStrict TextRule = iota
	// TextPermissive ends a run only at whitespace, brackets and ','.
	TextPermissive
)

func (r TextRule) String() string {
	switch r {
	case TextStrict:
		return "strict"
	case TextPermissive:
		return "permissive"
	default:
		return "unknown"
	}
}

// ParseTextRule converts a configuration name into a TextRule.
func ParseTextRule(s string) (TextRule, error) {
	switch s {
	case "strict", "":
		return TextStrict, nil
	case "permissive":
		return TextPermissive, nil
	default:
		return TextStrict, fmt.Errorf("invalid text rule: %q (expected: strict|permissive)", s)
	}
}

// Options configures a Lexer. The zero value is the canonical lexer.
type Options struct {
	Text TextRule
}
