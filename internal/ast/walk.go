package ast

import (
	"slices"

	"sillyfmt/internal/token"
)

// Children returns the direct children of id in source order.
func (b *Builder) Children(id NodeID) []NodeID {
	node := b.Node(id)
	if node == nil {
		return nil
	}
	switch node.Kind {
	case NodeContainer:
		c, _ := b.Nodes.Container(id)
		return c.Children
	case NodeBinary:
		bin, _ := b.Nodes.Binary(id)
		out := make([]NodeID, 0, 2)
		if bin.Left.IsValid() {
			out = append(out, bin.Left)
		}
		if bin.Right.IsValid() {
			out = append(out, bin.Right)
		}
		return out
	case NodeSequence:
		seq, _ := b.Nodes.Sequence(id)
		return slices.Concat(seq.Groups...)
	default:
		return nil
	}
}

// Walk visits id and its descendants in pre-order. depth counts the
// ancestors of the visited node. Returning false skips the node's children.
func (b *Builder) Walk(id NodeID, fn func(id NodeID, depth int) bool) {
	b.walk(id, 0, fn)
}

func (b *Builder) walk(id NodeID, depth int, fn func(NodeID, int) bool) {
	if !id.IsValid() || !fn(id, depth) {
		return
	}
	for _, child := range b.Children(id) {
		b.walk(child, depth+1, fn)
	}
}

// Inspect walks every top-level expression of file.
func (b *Builder) Inspect(file FileID, fn func(id NodeID, depth int) bool) {
	f := b.Files.Get(file)
	if f == nil {
		return
	}
	for _, expr := range f.Exprs {
		b.Walk(expr, fn)
	}
}

// Depth returns the maximum container nesting below and including id.
func (b *Builder) Depth(id NodeID) int {
	node := b.Node(id)
	if node == nil {
		return 0
	}
	deepest := 0
	for _, child := range b.Children(id) {
		deepest = max(deepest, b.Depth(child))
	}
	if node.Kind == NodeContainer {
		deepest++
	}
	return deepest
}

// FileDepth returns the maximum container nesting of the whole file.
func (b *Builder) FileDepth(file FileID) int {
	deepest := 0
	for _, expr := range b.Files.Get(file).Exprs {
		deepest = max(deepest, b.Depth(expr))
	}
	return deepest
}

// Leaves returns every token held by the subtree in source order: leaf
// tokens, operators, container brackets and sequence commas.
func (b *Builder) Leaves(id NodeID) []token.Token {
	var out []token.Token
	b.appendLeaves(&out, id)
	return out
}

// FileLeaves returns the tokens of every top-level expression of file.
func (b *Builder) FileLeaves(file FileID) []token.Token {
	var out []token.Token
	for _, expr := range b.Files.Get(file).Exprs {
		b.appendLeaves(&out, expr)
	}
	return out
}

func (b *Builder) appendLeaves(out *[]token.Token, id NodeID) {
	node := b.Node(id)
	if node == nil {
		return
	}
	switch node.Kind {
	case NodeContainer:
		c, _ := b.Nodes.Container(id)
		*out = append(*out, c.Open)
		for _, child := range c.Children {
			b.appendLeaves(out, child)
		}
		if c.Closed {
			*out = append(*out, c.Close)
		}
	case NodeBinary:
		bin, _ := b.Nodes.Binary(id)
		b.appendLeaves(out, bin.Left)
		*out = append(*out, bin.Op)
		b.appendLeaves(out, bin.Right)
	case NodeSequence:
		seq, _ := b.Nodes.Sequence(id)
		for i, group := range seq.Groups {
			if i > 0 {
				*out = append(*out, seq.Commas[i-1])
			}
			for _, member := range group {
				b.appendLeaves(out, member)
			}
		}
	default:
		*out = append(*out, node.Tok)
	}
}
