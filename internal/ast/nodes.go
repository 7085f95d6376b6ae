package ast

import (
	"sillyfmt/internal/source"
	"sillyfmt/internal/token"
)

// Nodes manages allocation of nodes and their payloads.
type Nodes struct {
	Arena      *Arena[Node]
	Containers *Arena[ContainerData]
	Binaries   *Arena[BinaryData]
	Sequences  *Arena[SequenceData]
}

// NewNodes creates the node arena and its payload arenas with capHint as the
// initial node capacity; payload arenas get a quarter of it.
func NewNodes(capHint uint) *Nodes {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Nodes{
		Arena:      NewArena[Node](capHint),
		Containers: NewArena[ContainerData](capHint / 4),
		Binaries:   NewArena[BinaryData](capHint / 4),
		Sequences:  NewArena[SequenceData](capHint / 8),
	}
}

func (n *Nodes) new(kind NodeKind, span source.Span, tok token.Token, payload PayloadID) NodeID {
	return NodeID(n.Arena.Allocate(Node{
		Kind:    kind,
		Span:    span,
		Tok:     tok,
		Payload: payload,
	}))
}

// Get returns the node with the given ID, or nil.
func (n *Nodes) Get(id NodeID) *Node {
	return n.Arena.Get(uint32(id))
}

// NewLeaf creates a leaf node of one of the leaf kinds.
func (n *Nodes) NewLeaf(kind NodeKind, tok token.Token) NodeID {
	if !kind.IsLeaf() {
		panic("ast: NewLeaf with composite kind " + kind.String())
	}
	return n.new(kind, tok.Span, tok, NoPayloadID)
}

// NewContainer creates a container. Pass a zero close token and closed=false
// for an unterminated container.
func (n *Nodes) NewContainer(open, closeTok token.Token, closed bool, children []NodeID) NodeID {
	span := open.Span
	if closed {
		span = span.Cover(closeTok.Span)
	} else if len(children) > 0 {
		span = span.Cover(n.Get(children[len(children)-1]).Span)
	}
	payload := n.Containers.Allocate(ContainerData{
		Open:     open,
		Close:    closeTok,
		Closed:   closed,
		Children: children,
	})
	return n.new(NodeContainer, span, open, PayloadID(payload))
}

// Container returns the container data for the given node ID.
func (n *Nodes) Container(id NodeID) (*ContainerData, bool) {
	node := n.Get(id)
	if node == nil || node.Kind != NodeContainer {
		return nil, false
	}
	return n.Containers.Get(uint32(node.Payload)), true
}

// NewBinary creates a binary op. Either operand may be NoNodeID, not both.
func (n *Nodes) NewBinary(left NodeID, op token.Token, right NodeID, conflicting bool) NodeID {
	if !left.IsValid() && !right.IsValid() {
		panic("ast: binary op without operands")
	}
	span := op.Span
	if left.IsValid() {
		span = span.Cover(n.Get(left).Span)
	}
	if right.IsValid() {
		span = span.Cover(n.Get(right).Span)
	}
	payload := n.Binaries.Allocate(BinaryData{
		Left:        left,
		Op:          op,
		Right:       right,
		Conflicting: conflicting,
	})
	return n.new(NodeBinary, span, op, PayloadID(payload))
}

// Binary returns the binary op data for the given node ID.
func (n *Nodes) Binary(id NodeID) (*BinaryData, bool) {
	node := n.Get(id)
	if node == nil || node.Kind != NodeBinary {
		return nil, false
	}
	return n.Binaries.Get(uint32(node.Payload)), true
}

// NewSequence creates a comma-delimited sequence.
func (n *Nodes) NewSequence(groups [][]NodeID, commas []token.Token) NodeID {
	if len(groups) < 2 || len(commas) != len(groups)-1 {
		panic("ast: sequence needs at least two groups separated by commas")
	}
	first := groups[0][0]
	lastGroup := groups[len(groups)-1]
	span := n.Get(first).Span.Cover(n.Get(lastGroup[len(lastGroup)-1]).Span)
	payload := n.Sequences.Allocate(SequenceData{Groups: groups, Commas: commas})
	return n.new(NodeSequence, span, token.Token{}, PayloadID(payload))
}

// Sequence returns the sequence data for the given node ID.
func (n *Nodes) Sequence(id NodeID) (*SequenceData, bool) {
	node := n.Get(id)
	if node == nil || node.Kind != NodeSequence {
		return nil, false
	}
	return n.Sequences.Get(uint32(node.Payload)), true
}
