package lexer

import (
	"sillyfmt/internal/source"
	"sillyfmt/internal/token"
)

// Lexer turns one source.File into tokens. It never fails: every byte of the
// input ends up either skipped as whitespace or inside exactly one token.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next token. After the end of input it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipSpace()
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	ch := lx.cursor.Peek()
	if isDec(ch) {
		// время проверяем раньше операторов, иначе ':' уйдёт в Colon
		if tok, ok := lx.scanTime(); ok {
			return tok
		}
	}
	if tok, ok := lx.scanOperatorOrPunct(); ok {
		return tok
	}
	return lx.scanText()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns an empty span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.At(lx.file.ID, lx.cursor.Off)
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: k,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) skipSpace() {
	for !lx.cursor.EOF() {
		r, sz := lx.peekRune()
		if !isSpace(r) {
			return
		}
		lx.cursor.Advance(sz)
	}
}

// Tokenize lexes the whole file and returns its tokens without the trailing EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	tokens := make([]token.Token, 0, len(file.Content)/2+1)
	for {
		tok := lx.Next()
		if tok.Kind.IsEOF() {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
