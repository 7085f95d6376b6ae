package parser

import (
	"sillyfmt/internal/ast"
	"sillyfmt/internal/grammar"
	"sillyfmt/internal/token"
)

// operatorAt reports whether the token at i acts as a binary operator:
// a symbol, or an angle bracket the resolution pass could not pair.
func (p *Parser) operatorAt(i int) bool {
	k := p.tokens[i].Kind
	return k.IsSymbol() || (k.IsAngle() && p.res.Role(i) == grammar.RoleConflicting)
}

// bindingAt возвращает приоритет и ассоциативность оператора на позиции i.
func (p *Parser) bindingAt(i int) grammar.Binding {
	b, _ := p.opts.Grammar.Binding(p.tokens[i].Kind)
	return b
}

// rightMinPrec is the minimum precedence for the operand right of an
// operator with binding b.
//
// Chained: the remainder is parsed at the operator's own level, so equal
// levels nest to the right and a looser operator takes the whole chain as
// its left operand. Infix: ordinary precedence climbing.
func (p *Parser) rightMinPrec(b grammar.Binding) int {
	if p.opts.Grammar.Chained() || b.Assoc == grammar.AssocRight {
		return b.Prec
	}
	return b.Prec + 1
}

// leafKindFor maps a leaf token onto its node kind.
func leafKindFor(tok token.Token, conflicting bool) ast.NodeKind {
	switch {
	case tok.Kind == token.Time:
		return ast.NodeTime
	case tok.Kind == token.ColonColon:
		return ast.NodeNonSymbol
	case tok.Kind.IsSymbol():
		return ast.NodeSymbol
	case conflicting:
		return ast.NodeConflicting
	default:
		return ast.NodeText
	}
}
