package testkit

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"sillyfmt/internal/ast"
	"sillyfmt/internal/grammar"
	"sillyfmt/internal/source"
	"sillyfmt/internal/token"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) file.Span is within file content bounds
// 2) every node span is non-empty and fully contained in its parent's span
// 3) file.Span covers the union of top-level spans (if any exist)
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}

	// 1) file span sanity
	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", f.Span.End, lenContent)
	}

	// 2) node spans nest; 3) file covers them
	var errs []error
	for _, expr := range f.Exprs {
		errs = append(errs, checkSpans(b, expr, f.Span, sf.ID))
	}
	return errors.Join(errs...)
}

func checkSpans(b *ast.Builder, id ast.NodeID, parent source.Span, file source.FileID) error {
	node := b.Node(id)
	if node == nil {
		return fmt.Errorf("nil node for id=%d", id)
	}
	sp := node.Span
	if sp.Empty() {
		return fmt.Errorf("empty %s span: %v", node.Kind, sp)
	}
	if sp.File != file {
		return fmt.Errorf("%s span file mismatch: got=%d want=%d", node.Kind, sp.File, file)
	}
	if !parent.Contains(sp) {
		return fmt.Errorf("%s span %v is outside parent span %v", node.Kind, sp, parent)
	}
	for _, child := range b.Children(id) {
		if err := checkSpans(b, child, sp, file); err != nil {
			return err
		}
	}
	return nil
}

// CheckTree verifies the structural invariants of a parse of tokens:
//   - the leaves of the tree, in order, are exactly the token stream;
//   - containers pair an open and a close of one family, and only brackets
//     the resolution pass paired are closed;
//   - sequences hold two or more non-empty groups and never nest directly;
//   - binary ops carry an operator and at least one operand;
//   - the container depth of the tree equals the bracket depth of the text.
func CheckTree(b *ast.Builder, fileID ast.FileID, tokens []token.Token) error {
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}
	var errs []error

	leaves := b.FileLeaves(fileID)
	if len(leaves) != len(tokens) {
		errs = append(errs, fmt.Errorf("tree holds %d tokens, input has %d", len(leaves), len(tokens)))
	} else {
		for i := range tokens {
			if leaves[i].Kind != tokens[i].Kind || leaves[i].Span != tokens[i].Span {
				errs = append(errs, fmt.Errorf("token %d: tree has %v %v, input has %v %v",
					i, leaves[i].Kind, leaves[i].Span, tokens[i].Kind, tokens[i].Span))
				break
			}
		}
	}

	for _, expr := range f.Exprs {
		b.Walk(expr, func(id ast.NodeID, _ int) bool {
			if err := checkNode(b, id); err != nil {
				errs = append(errs, err)
			}
			return true
		})
	}

	if want, got := TextDepth(tokens), b.FileDepth(fileID); want != got {
		errs = append(errs, fmt.Errorf("tree depth %d, text depth %d", got, want))
	}
	return errors.Join(errs...)
}

func checkNode(b *ast.Builder, id ast.NodeID) error {
	node := b.Node(id)
	switch node.Kind {
	case ast.NodeContainer:
		c, _ := b.Nodes.Container(id)
		if !c.Open.Kind.IsOpen() {
			return fmt.Errorf("container %v opens with %v", node.Span, c.Open.Kind)
		}
		if c.Closed && (!c.Close.Kind.IsClose() || c.Close.Family() != c.Open.Family()) {
			return fmt.Errorf("container %v: %q closed by %q", node.Span, c.Open.Text, c.Close.Text)
		}
		if !c.Closed && c.Open.Kind.IsAngle() {
			return fmt.Errorf("unterminated angle container at %v", node.Span)
		}
	case ast.NodeSequence:
		seq, _ := b.Nodes.Sequence(id)
		if len(seq.Groups) < 2 {
			return fmt.Errorf("sequence %v has %d groups", node.Span, len(seq.Groups))
		}
		for _, group := range seq.Groups {
			if len(group) == 0 {
				return fmt.Errorf("sequence %v has an empty group", node.Span)
			}
			for _, member := range group {
				if b.Node(member).Kind == ast.NodeSequence {
					return fmt.Errorf("sequence %v nests a sequence directly", node.Span)
				}
			}
		}
	case ast.NodeBinary:
		bin, _ := b.Nodes.Binary(id)
		if !bin.Left.IsValid() && !bin.Right.IsValid() {
			return fmt.Errorf("binary op %v without operands", node.Span)
		}
		if !bin.Op.Kind.IsSymbol() && !bin.Op.Kind.IsAngle() {
			return fmt.Errorf("binary op %v has operator %v", node.Span, bin.Op.Kind)
		}
		if bin.Conflicting != bin.Op.Kind.IsAngle() {
			return fmt.Errorf("binary op %v: conflicting flag does not match %q", node.Span, bin.Op.Text)
		}
	}
	return nil
}

// TextDepth is the bracket nesting depth of the token stream as decided by
// the resolution pass, independent of any tree.
func TextDepth(tokens []token.Token) int {
	res := grammar.Resolve(tokens)
	var stack []int // End каждого открытого контейнера
	deepest := 0
	for i := range tokens {
		for len(stack) > 0 && stack[len(stack)-1] <= i {
			stack = stack[:len(stack)-1]
		}
		if res.IsOpen(i) {
			stack = append(stack, res.End[i])
			deepest = max(deepest, len(stack))
		}
	}
	return deepest
}
