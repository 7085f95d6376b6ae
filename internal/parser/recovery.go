package parser

import (
	"strconv"

	"sillyfmt/internal/diag"
	"sillyfmt/internal/grammar"
	"sillyfmt/internal/source"
)

const (
	codeUnterminated     = diag.SynUnterminatedContainer
	codeCut              = diag.SynCutContainer
	codeStrayClose       = diag.SynStrayClose
	codeAngleAsOperator  = diag.SynAngleAsOperator
	codeDanglingOperator = diag.SynDanglingOperator
	codeStrayComma       = diag.SynStrayComma
)

// reportResolution turns the decisions of the bracket pass into notes.
func (p *Parser) reportResolution() {
	if p.opts.Reporter == nil {
		return
	}
	for i, role := range p.res.Roles {
		tok := p.tokens[i]
		switch role {
		case grammar.RoleStray:
			diag.ReportWarning(p.opts.Reporter, codeStrayClose, tok.Span,
				"no open bracket for "+quote(tok.Text)+"; kept as text").Emit()
		case grammar.RoleConflicting:
			p.info(codeAngleAsOperator, tok.Span, quote(tok.Text)+" has no partner; read as an operator")
		}
	}
	for _, i := range p.res.Cut {
		open := p.tokens[i]
		closer := p.tokens[p.res.End[i]]
		want := string(open.Family().Close())
		diag.ReportWarning(p.opts.Reporter, codeCut, open.Span,
			quote(open.Text)+" is closed by "+quote(closer.Text)+" of an outer container").
			WithNote(closer.Span, "outer container closes here").
			WithFix("insert "+quote(want), diag.FixEdit{Span: source.At(closer.Span.File, closer.Span.Start), NewText: want}).
			Emit()
	}
	eof := source.At(p.src.ID, p.src.Size())
	// изнутри наружу, чтобы правки в конце файла закрывали скобки в верном порядке
	for k := len(p.res.Unterminated) - 1; k >= 0; k-- {
		open := p.tokens[p.res.Unterminated[k]]
		want := string(open.Family().Close())
		diag.ReportWarning(p.opts.Reporter, codeUnterminated, open.Span,
			quote(open.Text)+" is never closed").
			WithFix("append "+quote(want), diag.FixEdit{Span: eof, NewText: want}).
			Emit()
	}
}

func (p *Parser) info(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	diag.ReportInfo(p.opts.Reporter, code, sp, msg).Emit()
}

func quote(s string) string {
	return strconv.Quote(s)
}
