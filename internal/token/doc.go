// Package token defines the lexical token kinds of the sillyfmt notation.
// Invariants:
//   - Token.Text is the exact lexeme taken from the source.
//   - Token.Span matches Text exactly (Start..End, in bytes).
//   - '<' and '>' are always lexed as angle brackets (LAngle/RAngle); whether
//     they open a container or act as a comparison operator is decided later
//     by the grammar, never by the lexer.
//   - Whitespace is dropped; there is no trivia in the token stream.
package token
