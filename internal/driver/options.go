// Package driver runs the lexer and parser over files and text for the CLI,
// the live view and the language server.
package driver

import (
	"github.com/tliron/commonlog"

	"sillyfmt/internal/config"
	"sillyfmt/internal/grammar"
	"sillyfmt/internal/observ"
	"sillyfmt/internal/source"
)

var log = commonlog.GetLogger("sillyfmt.driver")

type Options struct {
	// Grammar is the rule table; the zero value means grammar.Default().
	Grammar grammar.Table
	Load    source.LoadOptions
	// Balance pads unbalanced ( [ { before lexing.
	Balance bool
	// MaxDiagnostics caps each result's Bag; 0 keeps everything.
	MaxDiagnostics int
	// Jobs limits ParseFiles workers; <= 0 means GOMAXPROCS.
	Jobs int

	// Timer, when set, receives the phases of every call.
	Timer    *observ.Timer
	Observer PhaseObserver
}

// OptionsFromConfig maps a loaded configuration onto driver options.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	tbl, err := cfg.Table()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Grammar: tbl,
		Load:    cfg.LoadOptions(),
		Balance: cfg.Input.Balance,
	}, nil
}

func (o Options) table() grammar.Table {
	if o.Grammar == (grammar.Table{}) {
		return grammar.Default()
	}
	return o.Grammar
}
