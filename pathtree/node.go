package pathtree

import (
	"maps"
	"slices"
	"strings"

	"github.com/erraggy/oaspathtree/internal/pathutil"
	"github.com/erraggy/oaspathtree/oaserrors"
)

// RootSegment is the sentinel segment of a tree's root node.
const RootSegment = "/"

// TreeSeparator joins segments in a node's assembled path.
const TreeSeparator = pathutil.TreeSeparator

// Node is one segment of the path tree. A node owns its children; there are
// no parent pointers, so ancestor context is passed down during traversal.
type Node struct {
	segment string
	path    string

	children map[string]*Node
	order    []string // child segments in insertion order

	pathItems      map[string]PathItem
	additionalData map[string][]string
}

// NewRoot creates a root node with the sentinel segment and an empty path.
func NewRoot() *Node {
	return newNode(RootSegment, "")
}

func newNode(segment, path string) *Node {
	return &Node{
		segment:        segment,
		path:           path,
		children:       make(map[string]*Node),
		pathItems:      make(map[string]PathItem),
		additionalData: make(map[string][]string),
	}
}

// Segment returns the path component this node represents.
func (n *Node) Segment() string { return n.segment }

// Path returns the node's assembled path: each ancestor's segment joined by
// [TreeSeparator]. The root's path is empty.
func (n *Node) Path() string { return n.path }

// URLPath returns the node's path as a URL template, "/" for the root.
func (n *Node) URLPath() string { return pathutil.TreeToURL(n.path) }

// IsRoot reports whether n has the root's empty path.
func (n *Node) IsRoot() bool { return n.path == "" }

// IsParameter reports whether the segment is a path parameter such as "{id}".
func (n *Node) IsParameter() bool {
	return strings.HasPrefix(n.segment, "{")
}

// ParameterName returns the name inside a parameter segment's braces, or ""
// for literal segments.
func (n *Node) ParameterName() string {
	return pathutil.ParamName(n.segment)
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.order))
	for _, seg := range n.order {
		out = append(out, n.children[seg])
	}
	return out
}

// Child returns the child for an exact segment, or nil.
func (n *Node) Child(segment string) *Node {
	return n.children[segment]
}

func (n *Node) addChild(child *Node) {
	n.children[child.segment] = child
	n.order = append(n.order, child.segment)
}

// PathItem returns the metadata recorded under label.
func (n *Node) PathItem(label string) (PathItem, bool) {
	item, ok := n.pathItems[label]
	return item, ok
}

// PathItems returns a copy of the label to metadata bindings at this node.
func (n *Node) PathItems() map[string]PathItem {
	return maps.Clone(n.pathItems)
}

// Labels returns the labels attached at this node, sorted.
func (n *Node) Labels() []string {
	return slices.Sorted(maps.Keys(n.pathItems))
}

// IsTerminal reports whether any label has recorded a path item here.
func (n *Node) IsTerminal() bool {
	return len(n.pathItems) > 0
}

// AdditionalData returns a copy of the node's annotations.
func (n *Node) AdditionalData() map[string][]string {
	out := make(map[string][]string, len(n.additionalData))
	for k, v := range n.additionalData {
		out[k] = slices.Clone(v)
	}
	return out
}

// HasOperations reports whether the path item recorded under label exposes
// at least one operation key. It is false when label is not attached here.
func (n *Node) HasOperations(label string) (bool, error) {
	if label == "" {
		return false, &oaserrors.InvalidArgumentError{Argument: "label", Message: "must not be empty"}
	}
	item, ok := n.pathItems[label]
	if !ok {
		return false, nil
	}
	return len(item.OperationKeys()) > 0, nil
}
