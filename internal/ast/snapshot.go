package ast

// Snapshot is a self-contained copy of a subtree, free of arena IDs. It is
// what the output formats serialise and what tests compare.
type Snapshot struct {
	Kind string `json:"kind" msgpack:"kind"`
	// Text is the lexeme of a leaf, the operator of a binary op, or the
	// brackets of a container ("()", or "(" when unterminated).
	Text        string       `json:"text,omitempty" msgpack:"text,omitempty"`
	Conflicting bool         `json:"conflicting,omitempty" msgpack:"conflicting,omitempty"`
	Left        *Snapshot    `json:"left,omitempty" msgpack:"left,omitempty"`
	Right       *Snapshot    `json:"right,omitempty" msgpack:"right,omitempty"`
	Children    []Snapshot   `json:"children,omitempty" msgpack:"children,omitempty"`
	Groups      [][]Snapshot `json:"groups,omitempty" msgpack:"groups,omitempty"`
}

// Snapshot copies the subtree rooted at id.
func (b *Builder) Snapshot(id NodeID) Snapshot {
	node := b.Node(id)
	if node == nil {
		return Snapshot{}
	}
	snap := Snapshot{Kind: node.Kind.String()}
	switch node.Kind {
	case NodeContainer:
		c, _ := b.Nodes.Container(id)
		snap.Text = c.Open.Text + c.Close.Text
		snap.Children = b.snapshots(c.Children)
	case NodeBinary:
		bin, _ := b.Nodes.Binary(id)
		snap.Text = bin.Op.Text
		snap.Conflicting = bin.Conflicting
		if bin.Left.IsValid() {
			left := b.Snapshot(bin.Left)
			snap.Left = &left
		}
		if bin.Right.IsValid() {
			right := b.Snapshot(bin.Right)
			snap.Right = &right
		}
	case NodeSequence:
		seq, _ := b.Nodes.Sequence(id)
		snap.Groups = make([][]Snapshot, len(seq.Groups))
		for i, group := range seq.Groups {
			snap.Groups[i] = b.snapshots(group)
		}
	default:
		snap.Text = node.Tok.Text
	}
	return snap
}

// FileSnapshot copies every top-level expression of file.
func (b *Builder) FileSnapshot(file FileID) []Snapshot {
	return b.snapshots(b.Files.Get(file).Exprs)
}

func (b *Builder) snapshots(ids []NodeID) []Snapshot {
	if len(ids) == 0 {
		return nil
	}
	out := make([]Snapshot, len(ids))
	for i, id := range ids {
		out[i] = b.Snapshot(id)
	}
	return out
}
