package ast

import (
	"sillyfmt/internal/source"
	"sillyfmt/internal/token"
)

type NodeKind uint8

const (
	NodeText NodeKind = iota
	NodeTime
	NodeSymbol
	NodeConflicting
	NodeNonSymbol
	NodeContainer
	NodeBinary
	NodeSequence
)

var nodeKindNames = [...]string{
	NodeText:        "text",
	NodeTime:        "time",
	NodeSymbol:      "symbol",
	NodeConflicting: "conflicting_symbol",
	NodeNonSymbol:   "nonsymbol",
	NodeContainer:   "container",
	NodeBinary:      "binary_op",
	NodeSequence:    "comma_delimited_sequence",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// IsLeaf reports whether nodes of this kind carry no children.
func (k NodeKind) IsLeaf() bool {
	return k <= NodeNonSymbol
}

// Node is one tree node. Leaves keep their token in Tok; a binary op keeps
// its operator there. Composite kinds store the rest in a payload arena.
type Node struct {
	Kind    NodeKind
	Span    source.Span
	Tok     token.Token
	Payload PayloadID
}

// ContainerData is the payload of NodeContainer.
type ContainerData struct {
	Open     token.Token
	Close    token.Token // zero Token when !Closed
	Closed   bool
	Children []NodeID
}

// BinaryData is the payload of NodeBinary. At least one operand is valid.
type BinaryData struct {
	Left        NodeID
	Op          token.Token
	Right       NodeID
	Conflicting bool
}

// SequenceData is the payload of NodeSequence: two or more non-empty groups
// with len(Groups)-1 separating commas.
type SequenceData struct {
	Groups [][]NodeID
	Commas []token.Token
}
