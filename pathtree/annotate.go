package pathtree

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaspathtree/oaserrors"
)

// MergeAdditionalData copies each key of incoming into the node's
// annotations. An existing key is overwritten, not appended to. Path items
// and children are untouched.
func (n *Node) MergeAdditionalData(incoming map[string][]string) error {
	if incoming == nil {
		return &oaserrors.InvalidArgumentError{Argument: "incoming", Message: "must not be nil"}
	}
	for key, values := range incoming {
		n.additionalData[key] = slices.Clone(values)
	}
	return nil
}

// Annotations maps URL path templates to the additional data merged into the
// matching node.
type Annotations map[string]map[string][]string

// MergeAnnotations merges each entry of byPath into the node found for its
// path. Every path is resolved before anything is merged, so an unknown path
// leaves the tree unchanged.
func (t *Tree) MergeAnnotations(byPath Annotations) error {
	if byPath == nil {
		return &oaserrors.InvalidArgumentError{Argument: "annotations", Message: "must not be nil"}
	}

	paths := slices.Sorted(maps.Keys(byPath))
	nodes := make([]*Node, len(paths))
	for i, path := range paths {
		node := t.root.Find(path)
		if node == nil {
			return &oaserrors.InvalidArgumentError{
				Argument: "annotations",
				Message:  fmt.Sprintf("path %q is not in the tree", path),
			}
		}
		nodes[i] = node
	}

	for i, path := range paths {
		data := byPath[path]
		if data == nil {
			continue
		}
		if err := nodes[i].MergeAdditionalData(data); err != nil {
			return err
		}
		t.logger.Debug("pathtree: merged annotations", "path", path, "keys", len(data))
	}
	return nil
}

// LoadAnnotations decodes a YAML (or JSON) annotations document:
//
//	/users/{id}:
//	  owner: [identity-team]
//	  tier: [gold]
//
// Empty input yields empty Annotations.
func LoadAnnotations(r io.Reader) (Annotations, error) {
	out := Annotations{}
	if err := yaml.NewDecoder(r).Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return Annotations{}, nil
		}
		return nil, &oaserrors.ParseError{Path: "annotations", Message: "invalid annotations document", Cause: err}
	}
	return out, nil
}

// CollectAnnotations gathers the additional data of every annotated node
// under root, root included, keyed by URL path. Values are copies.
func CollectAnnotations(root *Node) Annotations {
	out := Annotations{}
	if root == nil {
		return out
	}
	root.Walk(func(n *Node, _ int) bool {
		if len(n.additionalData) > 0 {
			out[n.URLPath()] = n.AdditionalData()
		}
		return true
	})
	return out
}

// Annotations returns the additional data of every annotated node, keyed by
// URL path.
func (t *Tree) Annotations() Annotations {
	return CollectAnnotations(t.root)
}
