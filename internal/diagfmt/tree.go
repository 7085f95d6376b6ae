package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"sillyfmt/internal/ast"
	"sillyfmt/internal/source"
)

// TreeOutput is the serialised form of one parsed input.
type TreeOutput struct {
	Path  string         `json:"path,omitempty" msgpack:"path,omitempty"`
	Span  source.Span    `json:"span" msgpack:"span"`
	Exprs []ast.Snapshot `json:"exprs" msgpack:"exprs"`
}

func newTreeOutput(builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) (TreeOutput, error) {
	file := builder.Files.Get(fileID)
	if file == nil {
		return TreeOutput{}, fmt.Errorf("file not found")
	}
	out := TreeOutput{
		Span:  file.Span,
		Exprs: builder.FileSnapshot(fileID),
	}
	if fs != nil {
		out.Path = fs.Get(file.Span.File).Path
	}
	if out.Exprs == nil {
		out.Exprs = []ast.Snapshot{}
	}
	return out, nil
}

// FormatTreeJSON writes the tree as indented JSON.
func FormatTreeJSON(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	out, err := newTreeOutput(builder, fileID, fs)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// FormatTreeMsgpack writes the tree as one msgpack value, the hand-off
// format for an external formatter process.
func FormatTreeMsgpack(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	out, err := newTreeOutput(builder, fileID, fs)
	if err != nil {
		return err
	}
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("msgpack")
	return enc.Encode(out)
}

// DecodeTreeMsgpack reads a value written by FormatTreeMsgpack.
func DecodeTreeMsgpack(r io.Reader) (TreeOutput, error) {
	var out TreeOutput
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("msgpack")
	if err := dec.Decode(&out); err != nil {
		return TreeOutput{}, fmt.Errorf("decode tree: %w", err)
	}
	return out, nil
}

// FormatTreeSexp writes an s-expression in the style of tree-sitter's
// debug print, with leaf lexemes quoted:
//
//	(source_file (binary_op (text "a") (symbol "=") (text "b")))
func FormatTreeSexp(w io.Writer, builder *ast.Builder, fileID ast.FileID) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file not found")
	}
	var sb strings.Builder
	sb.WriteString("(source_file")
	for _, expr := range file.Exprs {
		sb.WriteByte(' ')
		writeSexp(&sb, builder, expr)
	}
	sb.WriteString(")\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeSexp(sb *strings.Builder, builder *ast.Builder, id ast.NodeID) {
	node := builder.Node(id)
	sb.WriteByte('(')
	sb.WriteString(node.Kind.String())
	switch node.Kind {
	case ast.NodeContainer:
		c, _ := builder.Nodes.Container(id)
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(c.Open.Text))
		for _, child := range c.Children {
			sb.WriteByte(' ')
			writeSexp(sb, builder, child)
		}
		sb.WriteByte(' ')
		if c.Closed {
			sb.WriteString(strconv.Quote(c.Close.Text))
		} else {
			sb.WriteString("(MISSING " + strconv.Quote(string(c.Open.Family().Close())) + ")")
		}
	case ast.NodeBinary:
		bin, _ := builder.Nodes.Binary(id)
		if bin.Left.IsValid() {
			sb.WriteByte(' ')
			writeSexp(sb, builder, bin.Left)
		}
		kind := ast.NodeSymbol
		if bin.Conflicting {
			kind = ast.NodeConflicting
		}
		fmt.Fprintf(sb, " (%s %s)", kind, strconv.Quote(bin.Op.Text))
		if bin.Right.IsValid() {
			sb.WriteByte(' ')
			writeSexp(sb, builder, bin.Right)
		}
	case ast.NodeSequence:
		seq, _ := builder.Nodes.Sequence(id)
		for i, group := range seq.Groups {
			if i > 0 {
				sb.WriteString(` ","`)
			}
			for _, member := range group {
				sb.WriteByte(' ')
				writeSexp(sb, builder, member)
			}
		}
	default:
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(node.Tok.Text))
	}
	sb.WriteByte(')')
}

// FormatTreePretty writes an indented tree:
//
//	File (span: 1:1-1:4)
//	└─ binary_op "="
//	   ├─ text "a"
//	   └─ text "b"
func FormatTreePretty(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet, opts TreeOpts) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file not found")
	}
	p := treePrinter{
		w:       w,
		builder: builder,
		fs:      fs,
		opts:    opts,
		kind:    paint(opts.Color, color.FgCyan),
		lexeme:  paint(opts.Color, color.FgYellow),
		dim:     paint(opts.Color, color.Faint),
	}
	fmt.Fprintf(w, "File (span: %s)\n", formatSpan(file.Span, fs)) //nolint:errcheck
	p.children("", file.Exprs)
	return p.err
}

type treePrinter struct {
	w       io.Writer
	builder *ast.Builder
	fs      *source.FileSet
	opts    TreeOpts
	kind    func(a ...any) string
	lexeme  func(a ...any) string
	dim     func(a ...any) string
	err     error
}

func (p *treePrinter) children(prefix string, ids []ast.NodeID) {
	for idx, id := range ids {
		isLast := idx == len(ids)-1
		marker := "├─"
		childPrefix := prefix + "│  "
		if isLast {
			marker = "└─"
			childPrefix = prefix + "   "
		}
		p.node(prefix+marker+" ", childPrefix, id)
	}
}

func (p *treePrinter) line(head, label string, span source.Span) {
	if p.err != nil {
		return
	}
	if p.opts.Spans {
		label += p.dim(" (span: " + formatSpan(span, p.fs) + ")")
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", head, label)
}

func (p *treePrinter) node(head, prefix string, id ast.NodeID) {
	node := p.builder.Node(id)
	switch node.Kind {
	case ast.NodeContainer:
		c, _ := p.builder.Nodes.Container(id)
		label := p.kind("container") + " " + p.lexeme(c.Open.Text+c.Close.Text)
		if !c.Closed {
			label += p.dim(" (unterminated)")
		}
		p.line(head, label, node.Span)
		p.children(prefix, c.Children)
	case ast.NodeBinary:
		bin, _ := p.builder.Nodes.Binary(id)
		label := p.kind("binary_op") + " " + p.lexeme(strconv.Quote(bin.Op.Text))
		if bin.Conflicting {
			label += p.dim(" (conflicting)")
		}
		p.line(head, label, node.Span)
		leftMarker, leftPrefix := "├─ ", prefix+"│  "
		if !bin.Right.IsValid() {
			leftMarker, leftPrefix = "└─ ", prefix+"   "
		}
		if bin.Left.IsValid() {
			p.node(prefix+leftMarker, leftPrefix, bin.Left)
		} else {
			p.line(prefix+leftMarker, p.dim("∅"), node.Span)
		}
		if bin.Right.IsValid() {
			p.node(prefix+"└─ ", prefix+"   ", bin.Right)
		} else {
			p.line(prefix+"└─ ", p.dim("∅"), node.Span)
		}
	case ast.NodeSequence:
		seq, _ := p.builder.Nodes.Sequence(id)
		p.line(head, p.kind("comma_delimited_sequence"), node.Span)
		for gi, group := range seq.Groups {
			isLast := gi == len(seq.Groups)-1
			marker, childPrefix := "├─ ", prefix+"│  "
			if isLast {
				marker, childPrefix = "└─ ", prefix+"   "
			}
			p.line(prefix+marker, p.dim(fmt.Sprintf("group[%d]", gi)), node.Span)
			p.children(childPrefix, group)
		}
	default:
		p.line(head, p.kind(node.Kind.String())+" "+p.lexeme(strconv.Quote(node.Tok.Text)), node.Span)
	}
}

// paint returns a Sprint function for attrs, or plain fmt.Sprint when
// color is off, independent of the global color.NoColor switch.
func paint(enabled bool, attrs ...color.Attribute) func(a ...any) string {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs == nil {
		return fmt.Sprintf("%d-%d", span.Start, span.End)
	}
	start, end := fs.Resolve(span)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}
