package ast

import (
	"sillyfmt/internal/source"
)

type Hints struct{ Files, Nodes uint }

// Builder owns the arenas of one parse. It is not safe for concurrent use;
// give every goroutine its own Builder.
type Builder struct {
	Files *Files
	Nodes *Nodes
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1
	}
	if hints.Nodes == 0 {
		hints.Nodes = 1 << 8
	}
	return &Builder{
		Files: NewFiles(hints.Files),
		Nodes: NewNodes(hints.Nodes),
	}
}

func (b *Builder) NewFile(sp source.Span) FileID {
	return b.Files.New(sp)
}

func (b *Builder) PushExpr(file FileID, expr NodeID) {
	f := b.Files.Get(file)
	f.Exprs = append(f.Exprs, expr)
}

// Node returns the node with the given ID, or nil.
func (b *Builder) Node(id NodeID) *Node {
	return b.Nodes.Get(id)
}
