package driver

import (
	"sillyfmt/internal/lexer"
	"sillyfmt/internal/observ"
	"sillyfmt/internal/source"
	"sillyfmt/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
}

// Tokenize loads path and lexes it with the grammar's text rule.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	ph := newPhases(path, opts)
	stop := ph.track(observ.PhaseLoad)
	file, err := loadFile(fs, path, opts)
	stop()
	if err != nil {
		return nil, err
	}
	return tokenizeLoaded(fs, file, ph, opts), nil
}

// TokenizeText lexes an in-memory buffer named name.
func TokenizeText(name, text string, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	return tokenizeLoaded(fs, addText(fs, name, text, opts), newPhases(name, opts), opts)
}

func tokenizeLoaded(fs *source.FileSet, file *source.File, ph *phases, opts Options) *TokenizeResult {
	stop := ph.track(observ.PhaseLex)
	tokens := lexer.Tokenize(file, opts.table().LexerOptions())
	stop()
	opts.Timer.Merge(ph.timer)
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
	}
}
