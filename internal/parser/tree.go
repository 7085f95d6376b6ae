package parser

import (
	"sillyfmt/internal/ast"
	"sillyfmt/internal/diag"
	"sillyfmt/internal/grammar"
	"sillyfmt/internal/lexer"
	"sillyfmt/internal/source"
	"sillyfmt/internal/token"
)

// Tree is everything one parse produced, kept together for callers that
// start from a string.
type Tree struct {
	FileSet *source.FileSet
	Source  *source.File
	Tokens  []token.Token
	Builder *ast.Builder
	File    ast.FileID
	Bag     *diag.Bag
}

// ParseText lexes and parses text in a fresh FileSet. Recovery notes go to
// opts.Reporter if set, otherwise into Tree.Bag.
func ParseText(name, text string, opts Options) *Tree {
	fs := source.NewFileSet()
	src := fs.Get(fs.AddVirtual(name, []byte(text)))
	return ParseSource(fs, src, opts)
}

// ParseSource lexes and parses a file already in fs.
func ParseSource(fs *source.FileSet, src *source.File, opts Options) *Tree {
	if opts.Grammar == (grammar.Table{}) {
		opts.Grammar = grammar.Default()
	}
	var bag *diag.Bag
	if opts.Reporter == nil {
		bag = diag.NewBag(0)
		opts.Reporter = diag.BagReporter{Bag: bag}
	}

	tokens := lexer.Tokenize(src, opts.Grammar.LexerOptions())
	b := ast.NewBuilder(ast.Hints{Nodes: uint(len(tokens)) + 1})
	res := ParseFile(src, tokens, b, opts)
	if res.Bag != nil {
		bag = res.Bag
	}
	return &Tree{
		FileSet: fs,
		Source:  src,
		Tokens:  tokens,
		Builder: b,
		File:    res.File,
		Bag:     bag,
	}
}

// Exprs returns the top-level expressions.
func (t *Tree) Exprs() []ast.NodeID {
	return t.Builder.Files.Get(t.File).Exprs
}

// Snapshot returns a serialisable copy of the top-level expressions.
func (t *Tree) Snapshot() []ast.Snapshot {
	return t.Builder.FileSnapshot(t.File)
}
