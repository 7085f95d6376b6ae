package parser

import (
	"sillyfmt/internal/ast"
	"sillyfmt/internal/token"
)

// parseList parses everything up to limit as a repeated list of expressions.
func (p *Parser) parseList(limit int) []ast.NodeID {
	var out []ast.NodeID
	for p.pos < limit {
		before := p.pos
		out = append(out, p.parseExpression(limit)...)
		if p.pos == before {
			// не должно случаться: каждый шаг съедает хотя бы один токен
			out = append(out, p.leaf(p.advance(), false))
		}
	}
	return out
}

// parseExpression collects comma-separated groups of non-sequence
// expressions. Two or more non-empty groups make a sequence; otherwise the
// expressions come back unchanged. Commas that separate nothing become text
// leaves: trailing ones join the group on their left, leading and doubled
// ones the group on their right.
func (p *Parser) parseExpression(limit int) []ast.NodeID {
	cur := p.parseGroup(limit)
	if !p.atComma(limit) {
		return cur
	}

	var (
		groups  [][]ast.NodeID
		commas  []token.Token
		curReal = len(cur) > 0
	)
	for p.atComma(limit) {
		comma := p.advance()
		next := p.parseGroup(limit)
		switch {
		case curReal && len(next) > 0:
			groups = append(groups, cur)
			commas = append(commas, comma)
			cur = next
		case curReal:
			cur = append(cur, p.strayComma(comma))
		default:
			cur = append(cur, p.strayComma(comma))
			cur = append(cur, next...)
			curReal = len(next) > 0
		}
	}

	if len(groups) == 0 {
		return cur
	}
	groups = append(groups, cur)
	return []ast.NodeID{p.arenas.Nodes.NewSequence(groups, commas)}
}

// parseGroup parses non-sequence expressions up to the next comma or limit.
func (p *Parser) parseGroup(limit int) []ast.NodeID {
	var out []ast.NodeID
	for p.atOperand(limit) {
		out = append(out, p.parseNonSeq(limit))
	}
	return out
}

func (p *Parser) strayComma(comma token.Token) ast.NodeID {
	p.info(codeStrayComma, comma.Span, "comma separates nothing; kept as text")
	return p.leaf(comma, false)
}
