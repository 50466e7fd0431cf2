package pathtree

import (
	"bufio"
	"io"
	"strings"

	"github.com/erraggy/oaspathtree/oaserrors"
)

// WriteMermaid streams a Mermaid flowchart of the tree rooted at root to w.
//
// The output starts with "graph LR" and one classDef line per entry of the
// color table. It then walks the tree depth-first: for each child an edge
// line is written and the child is visited before its next sibling; after a
// node's children, a "class <id> <token>" line assigns its classification.
func WriteMermaid(w io.Writer, root *Node) error {
	if w == nil {
		return &oaserrors.InvalidArgumentError{Argument: "writer", Message: "must not be nil"}
	}
	if root == nil {
		return &oaserrors.InvalidArgumentError{Argument: "root", Message: "must not be nil"}
	}

	lw := lineWriter{bufio.NewWriter(w)}
	lw.line("graph LR")
	for _, c := range colorClasses {
		lw.line("classDef ", c.Token, " fill:", c.Fill, ",stroke:#333,stroke-width:4px")
	}
	writeMermaidNode(lw, root)
	return lw.Flush()
}

func writeMermaidNode(lw lineWriter, n *Node) {
	id := nodeID(n)
	for _, seg := range n.order {
		child := n.children[seg]
		lw.line(id, " --> ", nodeID(child), `["`, mermaidText(child.segment), `"]`)
		writeMermaidNode(lw, child)
	}
	lw.line("class ", id, " ", n.Classification())
}

// mermaidText escapes a double quote, which would otherwise end the quoted
// node text, as the Mermaid entity code #quot;.
func mermaidText(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}

// lineWriter writes newline-terminated lines. bufio.Writer keeps the first
// write error and reports it from Flush, so individual writes go unchecked.
type lineWriter struct {
	*bufio.Writer
}

func (lw lineWriter) line(parts ...string) {
	for _, p := range parts {
		_, _ = lw.WriteString(p)
	}
	_ = lw.WriteByte('\n')
}

// MermaidString renders the Mermaid flowchart into a string. Prefer
// [WriteMermaid] for large trees.
func MermaidString(root *Node) (string, error) {
	var sb strings.Builder
	if err := WriteMermaid(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteMermaid streams the tree's Mermaid flowchart to w.
func (t *Tree) WriteMermaid(w io.Writer) error {
	return WriteMermaid(w, t.root)
}
