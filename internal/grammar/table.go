package grammar

import (
	"fmt"

	"sillyfmt/internal/lexer"
	"sillyfmt/internal/token"
)

// Таблица приоритетов. Чем больше число, тем крепче связывание.
const (
	PrecSequence    = 1   // ,
	PrecConflicting = 5   // непарные < >
	PrecSymbol      = 10  // === <=> => -> <= >= == = : - +
	PrecLeaf        = 100 // text, time, ::, контейнеры
)

// Assoc is the associativity of an operator binding.
type Assoc uint8

const (
	AssocNone Assoc = iota
	AssocLeft
	AssocRight
)

func (a Assoc) String() string {
	switch a {
	case AssocLeft:
		return "left"
	case AssocRight:
		return "right"
	default:
		return "none"
	}
}

// Binding is the precedence and associativity of one token kind.
type Binding struct {
	Prec  int
	Assoc Assoc
}

// Revision selects the shape of binary-operator chains.
type Revision uint8

const (
	// RevisionChained lets an operator without a left operand start a chain
	// and nests equal-precedence operators to the right.
	RevisionChained Revision = iota
	// RevisionInfix is the flat left-associative reading; an operator
	// without a left operand is a symbol leaf.
	RevisionInfix
)

func (r Revision) String() string {
	switch r {
	case RevisionChained:
		return "chained"
	case RevisionInfix:
		return "infix"
	default:
		return fmt.Sprintf("Revision(%d)", r)
	}
}

// Table is a complete rule set. The zero value is not usable; start from
// Default or Infix.
type Table struct {
	Revision    Revision
	Text        lexer.TextRule
	Symbol      Binding
	Conflicting Binding
	Sequence    Binding
}

// Default returns the canonical table: chained operators, strict text runs.
func Default() Table {
	return Table{
		Revision:    RevisionChained,
		Text:        lexer.TextStrict,
		Symbol:      Binding{Prec: PrecSymbol, Assoc: AssocLeft},
		Conflicting: Binding{Prec: PrecConflicting, Assoc: AssocLeft},
		Sequence:    Binding{Prec: PrecSequence, Assoc: AssocRight},
	}
}

// Infix returns the flat infix table with permissive text runs.
func Infix() Table {
	t := Default()
	t.Revision = RevisionInfix
	t.Text = lexer.TextPermissive
	return t
}

// ByName resolves a configuration name into a table.
func ByName(name string) (Table, error) {
	switch name {
	case "chained", "":
		return Default(), nil
	case "infix":
		return Infix(), nil
	default:
		return Table{}, fmt.Errorf("unknown grammar revision %q (expected: chained|infix)", name)
	}
}

// Chained reports whether prefix operators start chains.
func (t Table) Chained() bool {
	return t.Revision == RevisionChained
}

// Binding returns the binding of an operator kind. Angle kinds get the
// conflicting binding; callers only ask for them once Resolve has marked the
// token RoleConflicting. Leaves report PrecLeaf and ok=false.
func (t Table) Binding(k token.Kind) (Binding, bool) {
	switch {
	case k.IsSymbol():
		return t.Symbol, true
	case k.IsAngle():
		return t.Conflicting, true
	case k == token.Comma:
		return t.Sequence, true
	default:
		return Binding{Prec: PrecLeaf, Assoc: AssocNone}, false
	}
}

// LexerOptions returns the lexer configuration that belongs to the table.
func (t Table) LexerOptions() lexer.Options {
	return lexer.Options{Text: t.Text}
}
