package lsp

import (
	"sort"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"sillyfmt/internal/ast"
	"sillyfmt/internal/driver"
	"sillyfmt/internal/source"
)

// buildFoldingRanges folds every container that spans more than one line.
// An unterminated container folds up to the end of its interior.
func buildFoldingRanges(res *driver.ParseResult) []protocol.FoldingRange {
	b := res.Builder
	ranges := make([]protocol.FoldingRange, 0)
	b.Inspect(res.FileID, func(id ast.NodeID, _ int) bool {
		node := b.Node(id)
		if node.Kind != ast.NodeContainer {
			return true
		}
		startLine := lineForOffset(res.File, node.Span.Start)
		endLine := lineForOffset(res.File, spanLastOffset(node.Span))
		if startLine < endLine {
			ranges = append(ranges, protocol.FoldingRange{
				StartLine: protocol.UInteger(startLine),
				EndLine:   protocol.UInteger(endLine),
			})
		}
		return true
	})
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].StartLine == ranges[j].StartLine {
			return ranges[i].EndLine < ranges[j].EndLine
		}
		return ranges[i].StartLine < ranges[j].StartLine
	})
	return ranges
}

func lineForOffset(file *source.File, offset uint32) uint32 {
	return positionForOffsetInFile(file, offset).Line
}

func spanLastOffset(span source.Span) uint32 {
	if span.End > span.Start {
		return span.End - 1
	}
	return span.End
}
