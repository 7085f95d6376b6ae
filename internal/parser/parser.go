package parser

import (
	"sillyfmt/internal/ast"
	"sillyfmt/internal/diag"
	"sillyfmt/internal/grammar"
	"sillyfmt/internal/source"
	"sillyfmt/internal/token"
)

type Options struct {
	// Grammar is the rule table; the zero value means grammar.Default().
	Grammar  grammar.Table
	Reporter diag.Reporter
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser хранит состояние разбора одного файла
type Parser struct {
	src    *source.File
	tokens []token.Token
	res    grammar.Resolution
	pos    int
	arenas *ast.Builder
	file   ast.FileID
	opts   Options
}

// ParseFile разбирает один файл.
// tokens must come from lexing src with the table's lexer options. The
// parse never fails: every token ends up in the tree under file.
func ParseFile(
	src *source.File,
	tokens []token.Token,
	arenas *ast.Builder,
	opts Options,
) Result {
	return ParseResolved(src, tokens, grammar.Resolve(tokens), arenas, opts)
}

// ParseResolved is ParseFile for callers that ran grammar.Resolve on tokens
// themselves, for instance to time it.
func ParseResolved(
	src *source.File,
	tokens []token.Token,
	res grammar.Resolution,
	arenas *ast.Builder,
	opts Options,
) Result {
	if opts.Grammar == (grammar.Table{}) {
		opts.Grammar = grammar.Default()
	}
	p := Parser{
		src:    src,
		tokens: tokens,
		res:    res,
		arenas: arenas,
		file:   arenas.NewFile(source.Span{File: src.ID, Start: 0, End: src.Size()}),
		opts:   opts,
	}

	p.reportResolution()
	for _, expr := range p.parseList(len(tokens)) {
		arenas.PushExpr(p.file, expr)
	}

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

func (p *Parser) advance() token.Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// atComma reports whether a comma is next before limit.
func (p *Parser) atComma(limit int) bool {
	return p.pos < limit && p.tokens[p.pos].Kind == token.Comma
}

// atOperand reports whether something other than a comma is next before limit.
func (p *Parser) atOperand(limit int) bool {
	return p.pos < limit && p.tokens[p.pos].Kind != token.Comma
}

func (p *Parser) atOperator(limit int) bool {
	return p.pos < limit && p.operatorAt(p.pos)
}

func (p *Parser) leaf(tok token.Token, conflicting bool) ast.NodeID {
	return p.arenas.Nodes.NewLeaf(leafKindFor(tok, conflicting), tok)
}
