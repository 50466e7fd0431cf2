package pathtree

import "github.com/erraggy/oaspathtree/internal/pathutil"

// Find returns the node reached by following path's segments from n without
// creating anything, or nil if some segment is missing. Splitting follows the
// same rules as [Node.Attach].
func (n *Node) Find(path string) *Node {
	current := n
	for _, seg := range pathutil.SplitTemplate(path) {
		if seg == "" {
			break
		}
		current = current.children[seg]
		if current == nil {
			return nil
		}
	}
	return current
}

// Walk visits n and its descendants in pre-order, children in insertion
// order. depth is 0 for n. Returning false from fn skips that node's subtree.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, seg := range n.order {
		n.children[seg].walk(fn, depth+1)
	}
}
