package pathtree

import (
	"github.com/erraggy/oaspathtree/oaserrors"
	"github.com/erraggy/oaspathtree/parser"
)

// Tree owns a root node and the logger used while building it. Build the
// tree with Attach/AttachAll/MergeAnnotations, then read or export it; a
// Tree must not be mutated concurrently.
type Tree struct {
	root   *Node
	logger parser.Logger
}

// Option configures a Tree.
type Option func(*Tree)

// WithLogger sets a structured logger for debug output while building.
// By default, no logging is performed.
func WithLogger(l parser.Logger) Option {
	return func(t *Tree) {
		t.logger = parser.OrNop(l)
	}
}

// New creates a tree holding a single root node.
func New(opts ...Option) *Tree {
	t := &Tree{
		root:   NewRoot(),
		logger: parser.NopLogger{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// FromSource creates a tree and attaches every path of source under label.
func FromSource(source Source, label string, opts ...Option) (*Tree, error) {
	if source == nil {
		return nil, &oaserrors.InvalidArgumentError{Argument: "source", Message: "must not be nil"}
	}
	if label == "" {
		return nil, &oaserrors.InvalidArgumentError{Argument: "label", Message: "must not be empty"}
	}
	t := New(opts...)
	if err := t.AttachAll(source, label); err != nil {
		return nil, err
	}
	return t, nil
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node { return t.root }

// Attach records item under label at the node for path. See [Node.Attach].
func (t *Tree) Attach(path, label string, item PathItem) (*Node, error) {
	return t.root.attach(path, label, item, t.logger)
}

// AttachAll attaches every path of source under label. See [Node.AttachAll].
func (t *Tree) AttachAll(source Source, label string) error {
	return t.root.attachAll(source, label, t.logger)
}

// Find returns the node for a URL path template, or nil.
func (t *Tree) Find(path string) *Node {
	return t.root.Find(path)
}

// Walk visits every node in pre-order. See [Node.Walk].
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	t.root.Walk(fn)
}
