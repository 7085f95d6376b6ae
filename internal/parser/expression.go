package parser

import (
	"sillyfmt/internal/ast"
	"sillyfmt/internal/grammar"
	"sillyfmt/internal/token"
)

// parseNonSeq parses one container, leaf or binary-operator chain.
func (p *Parser) parseNonSeq(limit int) ast.NodeID {
	return p.parseChain(limit, 0)
}

// parseChain: precedence climbing по таблице грамматики.
// minPrec - минимальный приоритет для текущего уровня.
func (p *Parser) parseChain(limit, minPrec int) ast.NodeID {
	var left ast.NodeID
	if p.atOperator(limit) && p.opts.Grammar.Chained() {
		// оператор в префиксной позиции всегда забирает остаток цепочки
		op := p.advance()
		right := p.parseRight(limit, p.bindingAt(p.pos-1))
		left = p.binary(ast.NoNodeID, op, right)
	} else {
		left = p.parseOperand()
	}

	for p.atOperator(limit) {
		b := p.bindingAt(p.pos)
		if b.Prec < minPrec {
			break
		}
		op := p.advance()
		right := p.parseRight(limit, b)
		left = p.binary(left, op, right)
	}
	return left
}

// parseRight parses the operand right of an operator with binding b, or
// returns NoNodeID when the chain ends at a comma or at limit.
func (p *Parser) parseRight(limit int, b grammar.Binding) ast.NodeID {
	if !p.atOperand(limit) {
		return ast.NoNodeID
	}
	return p.parseChain(limit, p.rightMinPrec(b))
}

// parseOperand consumes exactly one operand: a container or a leaf.
// In the infix revision an operator met here is a symbol leaf.
func (p *Parser) parseOperand() ast.NodeID {
	i := p.pos
	switch p.res.Role(i) {
	case grammar.RoleOpen:
		return p.parseContainer()
	case grammar.RoleConflicting:
		return p.leaf(p.advance(), true)
	}
	// RoleStray и RoleNone: лист как есть
	return p.leaf(p.advance(), false)
}

// binary builds a binary op; an operator with no operand at all is a leaf.
func (p *Parser) binary(left ast.NodeID, op token.Token, right ast.NodeID) ast.NodeID {
	conflicting := op.Kind.IsAngle()
	if !right.IsValid() {
		p.info(codeDanglingOperator, op.Span, "operator "+quote(op.Text)+" has no right operand")
		if !left.IsValid() {
			return p.leaf(op, conflicting)
		}
	}
	return p.arenas.Nodes.NewBinary(left, op, right, conflicting)
}
