package pathtree

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/erraggy/oaspathtree/oaserrors"
)

// WriteDOT streams a Graphviz digraph of the tree rooted at root to w. Node
// identifiers and labels match [WriteMermaid]; nodes are filled with the
// color of their classification, or white when the table has none. A node's
// annotations follow its segment in the label, one "key: values" line per
// key in sorted order.
func WriteDOT(w io.Writer, root *Node) error {
	if w == nil {
		return &oaserrors.InvalidArgumentError{Argument: "writer", Message: "must not be nil"}
	}
	if root == nil {
		return &oaserrors.InvalidArgumentError{Argument: "root", Message: "must not be nil"}
	}

	lw := lineWriter{bufio.NewWriter(w)}
	lw.line("digraph paths {")
	lw.line("  rankdir=LR;")
	lw.line(`  node [shape=box, style="rounded,filled", fillcolor=white, fontname=Helvetica];`)
	writeDOTNode(lw, root)
	lw.line("}")
	return lw.Flush()
}

func writeDOTNode(lw lineWriter, n *Node) {
	id := nodeID(n)
	token := n.Classification()
	fill, ok := FillFor(token)
	if !ok {
		fill = "white"
	}
	lw.line(fmt.Sprintf("  %q [label=%q, fillcolor=%q, tooltip=%q];",
		id, dotLabel(n), strings.ToLower(fill), token))
	for _, seg := range n.order {
		child := n.children[seg]
		lw.line(fmt.Sprintf("  %q -> %q;", id, nodeID(child)))
		writeDOTNode(lw, child)
	}
}

// dotLabel is the segment followed by the node's annotations. Graphviz reads
// the "\n" that %q produces as a line break.
func dotLabel(n *Node) string {
	if len(n.additionalData) == 0 {
		return n.segment
	}
	var sb strings.Builder
	sb.WriteString(n.segment)
	for _, key := range slices.Sorted(maps.Keys(n.additionalData)) {
		sb.WriteString("\n")
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(n.additionalData[key], ", "))
	}
	return sb.String()
}

// WriteDOT streams the tree's Graphviz digraph to w.
func (t *Tree) WriteDOT(w io.Writer) error {
	return WriteDOT(w, t.root)
}

// RenderSVG lays out the tree rooted at root with Graphviz and returns SVG
// bytes. Rendering runs in-process; no Graphviz install is needed.
func RenderSVG(ctx context.Context, root *Node) ([]byte, error) {
	var dot bytes.Buffer
	if err := WriteDOT(&dot, root); err != nil {
		return nil, err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("pathtree: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot.Bytes())
	if err != nil {
		return nil, fmt.Errorf("pathtree: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("pathtree: render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderSVG lays out the tree with Graphviz and returns SVG bytes.
func (t *Tree) RenderSVG(ctx context.Context) ([]byte, error) {
	return RenderSVG(ctx, t.root)
}
