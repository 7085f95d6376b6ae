package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sillyfmt/internal/diag"
	"sillyfmt/internal/driver"
)

func buildDiagnostics(uri protocol.DocumentUri, res *driver.ParseResult) []protocol.Diagnostic {
	items := res.Bag.Items()
	out := make([]protocol.Diagnostic, 0, len(items))
	source := lsName
	for _, d := range items {
		severity := toSeverity(d.Severity)
		pd := protocol.Diagnostic{
			Range:    rangeForSpan(res.File, d.Primary),
			Severity: &severity,
			Code:     &protocol.IntegerOrString{Value: d.Code.ID()},
			Source:   &source,
			Message:  d.Message,
		}
		for _, note := range d.Notes {
			pd.RelatedInformation = append(pd.RelatedInformation, protocol.DiagnosticRelatedInformation{
				Location: protocol.Location{URI: uri, Range: rangeForSpan(res.File, note.Span)},
				Message:  note.Msg,
			})
		}
		out = append(out, pd)
	}
	return out
}

func toSeverity(sev diag.Severity) protocol.DiagnosticSeverity {
	switch sev {
	case diag.SevError:
		return protocol.DiagnosticSeverityError
	case diag.SevWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}
