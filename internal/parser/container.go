package parser

import (
	"sillyfmt/internal/ast"
	"sillyfmt/internal/token"
)

// parseContainer parses a container whose open is the next token. The
// interior ends where the resolution pass said; the close is consumed only
// when the container is closed.
func (p *Parser) parseContainer() ast.NodeID {
	openIdx := p.pos
	open := p.advance()
	end := p.res.End[openIdx]

	children := p.parseList(end)

	var closeTok token.Token
	closed := p.res.Closed[openIdx]
	if closed {
		closeTok = p.advance()
	}
	return p.arenas.Nodes.NewContainer(open, closeTok, closed, children)
}
