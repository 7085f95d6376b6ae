package driver

import (
	"fortio.org/safecast"

	"sillyfmt/internal/ast"
	"sillyfmt/internal/diag"
	"sillyfmt/internal/grammar"
	"sillyfmt/internal/lexer"
	"sillyfmt/internal/observ"
	"sillyfmt/internal/parser"
	"sillyfmt/internal/source"
	"sillyfmt/internal/token"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
	// Timer holds the phases of this input alone.
	Timer *observ.Timer
}

// Parse loads filePath and parses it.
func Parse(filePath string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	ph := newPhases(filePath, opts)
	stop := ph.track(observ.PhaseLoad)
	file, err := loadFile(fs, filePath, opts)
	stop()
	if err != nil {
		return nil, err
	}
	res := parseLoaded(fs, file, ph, opts)
	opts.Timer.Merge(res.Timer)
	return res, nil
}

// ParseText parses an in-memory buffer named name.
func ParseText(name, text string, opts Options) *ParseResult {
	fs := source.NewFileSet()
	ph := newPhases(name, opts)
	stop := ph.track(observ.PhaseLoad)
	file := addText(fs, name, text, opts)
	stop()
	res := parseLoaded(fs, file, ph, opts)
	opts.Timer.Merge(res.Timer)
	return res
}

// parseLoaded never touches fs beyond reading file, so ParseFiles may call it
// from several goroutines.
func parseLoaded(fs *source.FileSet, file *source.File, ph *phases, opts Options) *ParseResult {
	tbl := opts.table()

	stop := ph.track(observ.PhaseLex)
	tokens := lexer.Tokenize(file, tbl.LexerOptions())
	stop()

	stop = ph.track(observ.PhaseResolve)
	res := grammar.Resolve(tokens)
	stop()

	hint, err := safecast.Conv[uint](len(tokens) + 1)
	if err != nil {
		hint = 0
	}
	bag := diag.NewBag(opts.MaxDiagnostics)
	builder := ast.NewBuilder(ast.Hints{Files: 1, Nodes: hint})

	stop = ph.track(observ.PhaseParse)
	result := parser.ParseResolved(file, tokens, res, builder, parser.Options{
		Grammar:  tbl,
		Reporter: diag.BagReporter{Bag: bag},
	})
	stop()

	log.Debugf("parsed %s: %d tokens, %d notes", file.Path, len(tokens), bag.Len())
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Builder: builder,
		FileID:  result.File,
		Bag:     bag,
		Timer:   ph.timer,
	}
}
