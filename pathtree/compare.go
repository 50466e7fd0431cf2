package pathtree

import (
	"maps"
	"slices"
)

// PathPresence reports which labels define one URL path.
type PathPresence struct {
	// Path is the URL template, e.g. "/users/{id}"
	Path string
	// Labels maps each compared label to whether it defines Path
	Labels map[string]bool
}

// InAll reports whether every compared label defines the path.
func (p PathPresence) InAll() bool {
	for _, ok := range p.Labels {
		if !ok {
			return false
		}
	}
	return true
}

// Missing returns the compared labels that do not define the path, sorted.
func (p PathPresence) Missing() []string {
	var out []string
	for label, ok := range p.Labels {
		if !ok {
			out = append(out, label)
		}
	}
	slices.Sort(out)
	return out
}

// Compare lists, in pre-order, every node where at least one of labels has
// recorded a path item, with per-label presence. With no labels it compares
// every label present in the tree.
func (t *Tree) Compare(labels ...string) []PathPresence {
	if len(labels) == 0 {
		labels = t.Stats().Labels
	}

	var rows []PathPresence
	t.root.Walk(func(n *Node, _ int) bool {
		row := PathPresence{Path: n.URLPath(), Labels: make(map[string]bool, len(labels))}
		defined := false
		for _, label := range labels {
			_, ok := n.pathItems[label]
			row.Labels[label] = ok
			defined = defined || ok
		}
		if defined {
			rows = append(rows, row)
		}
		return true
	})
	return rows
}

// Stats summarizes a tree's shape.
type Stats struct {
	// Nodes counts every node, the root included
	Nodes int
	// Terminals counts nodes carrying at least one path item
	Terminals int
	// Parameters counts "{name}" segment nodes
	Parameters int
	// MaxDepth is the depth of the deepest node; the root is depth 0
	MaxDepth int
	// Labels lists every label attached anywhere in the tree, sorted
	Labels []string
}

// Stats walks the tree and returns its summary.
func (t *Tree) Stats() Stats {
	var s Stats
	seen := make(map[string]struct{})
	t.root.Walk(func(n *Node, depth int) bool {
		s.Nodes++
		if n.IsTerminal() {
			s.Terminals++
		}
		if n.IsParameter() {
			s.Parameters++
		}
		s.MaxDepth = max(s.MaxDepth, depth)
		for label := range n.pathItems {
			seen[label] = struct{}{}
		}
		return true
	})
	s.Labels = slices.Sorted(maps.Keys(seen))
	return s
}
