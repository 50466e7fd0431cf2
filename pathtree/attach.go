package pathtree

import (
	"reflect"

	"github.com/erraggy/oaspathtree/internal/pathutil"
	"github.com/erraggy/oaspathtree/oaserrors"
	"github.com/erraggy/oaspathtree/parser"
)

// Attach records item under label at the node reached by following path's
// segments from n, creating intermediate nodes as needed, and returns that
// terminal node.
//
// One leading "/" is stripped before splitting on "/". Segments match by
// exact, case-sensitive string equality; "{id}" and "{userId}" are distinct
// children. An empty segment ends the walk, so "/" terminates at n itself
// and "/a/" at the "a" node.
//
// A label may be recorded only once per node. Recording it again returns a
// [oaserrors.DuplicateLabelError] and leaves the existing item in place.
func (n *Node) Attach(path, label string, item PathItem) (*Node, error) {
	return n.attach(path, label, item, parser.NopLogger{})
}

func (n *Node) attach(path, label string, item PathItem, log parser.Logger) (*Node, error) {
	if err := validateAttach(path, label, item); err != nil {
		return nil, err
	}

	current := n
	for _, seg := range pathutil.SplitTemplate(path) {
		if seg == "" {
			break
		}
		child, ok := current.children[seg]
		if !ok {
			child = newNode(seg, pathutil.JoinTreePath(current.path, seg))
			current.addChild(child)
			log.Debug("pathtree: created node", "node", child.path)
		}
		current = child
	}

	if _, exists := current.pathItems[label]; exists {
		return nil, &oaserrors.DuplicateLabelError{Label: label, Path: path}
	}
	current.pathItems[label] = item
	return current, nil
}

// AttachAll attaches every path of source under label, in the source's
// order. The first failure is returned unmodified; paths attached before it
// stay in the tree.
func (n *Node) AttachAll(source Source, label string) error {
	return n.attachAll(source, label, parser.NopLogger{})
}

func (n *Node) attachAll(source Source, label string, log parser.Logger) error {
	if source == nil {
		return &oaserrors.InvalidArgumentError{Argument: "source", Message: "must not be nil"}
	}
	if label == "" {
		return &oaserrors.InvalidArgumentError{Argument: "label", Message: "must not be empty"}
	}

	count := 0
	for path, item := range source.Paths() {
		if _, err := n.attach(path, label, item, log); err != nil {
			return err
		}
		count++
	}
	log.Debug("pathtree: attached source", "label", label, "paths", count)
	return nil
}

func validateAttach(path, label string, item PathItem) error {
	switch {
	case path == "":
		return &oaserrors.InvalidArgumentError{Argument: "path", Message: "must not be empty"}
	case label == "":
		return &oaserrors.InvalidArgumentError{Argument: "label", Message: "must not be empty"}
	case isNilItem(item):
		return &oaserrors.InvalidArgumentError{Argument: "item", Message: "must not be nil"}
	}
	return nil
}

// isNilItem also catches typed nil pointers such as (*parser.PathItem)(nil),
// which would otherwise panic on the first OperationKeys call.
func isNilItem(item PathItem) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
