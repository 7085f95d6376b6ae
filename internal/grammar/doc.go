// Package grammar holds the disambiguation engine of the notation: the
// precedence table the parser climbs over and the bracket resolution pass
// that decides, before any tree is built, which '<' and '>' are brackets,
// which brackets are unmatched and where every unterminated container ends.
//
// Both are plain values computed from the token slice alone, so a Table can
// be swapped (see Infix) without touching the parser.
package grammar
