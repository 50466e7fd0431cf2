package parser

import (
	"fmt"
	"iter"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaspathtree/internal/httputil"
	"github.com/erraggy/oaspathtree/oaserrors"
)

// decodeDocument reads the version, title and paths of an OAS document.
// It works on the yaml.Node tree so that path order survives decoding; JSON
// input is handled by the same decoder since JSON is valid YAML.
func decodeDocument(data []byte, source string, log Logger) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "invalid YAML/JSON", Cause: err}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, &oaserrors.ParseError{Path: source, Message: "document is empty"}
	}
	top := resolveAlias(root.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil, nodeError(source, top, "document root must be a mapping")
	}

	doc := &Document{SourcePath: source}
	var versionNode, pathsNode *yaml.Node
	for key, val := range mappingPairs(top) {
		switch key.Value {
		case "openapi", "swagger":
			versionNode = val
		case "info":
			if title := mappingValue(val, "title"); title != nil {
				doc.Title = title.Value
			}
		case "paths":
			pathsNode = val
		}
	}

	if versionNode == nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "missing 'openapi' or 'swagger' version field"}
	}
	version, err := ParseVersion(versionNode.Value)
	if err != nil {
		return nil, &oaserrors.ParseError{
			Path:    source,
			Line:    versionNode.Line,
			Column:  versionNode.Column,
			Message: "unsupported version",
			Cause:   err,
		}
	}
	doc.Version = version

	if pathsNode == nil || isNull(pathsNode) {
		log.Debug("document has no paths", "source", source)
		doc.buildIndex()
		return doc, nil
	}
	if pathsNode.Kind != yaml.MappingNode {
		return nil, nodeError(source, pathsNode, "'paths' must be a mapping")
	}

	methods := httputil.Methods(version.Major, version.Minor)
	for key, val := range mappingPairs(pathsNode) {
		if strings.HasPrefix(key.Value, "x-") {
			continue
		}
		item, err := decodePathItem(key, val, methods, version, source)
		if err != nil {
			return nil, err
		}
		if item.Ref != "" {
			log.Debug("path item $ref left unresolved", "path", item.Path, "ref", item.Ref)
		}
		doc.Paths = append(doc.Paths, item)
	}

	doc.buildIndex()
	log.Debug("decoded paths", "source", source, "version", version.Raw, "paths", len(doc.Paths))
	return doc, nil
}

func decodePathItem(key, val *yaml.Node, methods []string, version Version, source string) (*PathItem, error) {
	item := &PathItem{Path: key.Value, Line: key.Line}
	if isNull(val) {
		return item, nil
	}
	if val.Kind != yaml.MappingNode {
		return nil, nodeError(source, val, fmt.Sprintf("path item %q must be a mapping", key.Value))
	}

	ops := make(map[string]*yaml.Node, len(methods))
	var additional *yaml.Node
	for k, v := range mappingPairs(val) {
		switch k.Value {
		case "$ref":
			item.Ref = v.Value
		case "summary":
			item.Summary = v.Value
		case "description":
			item.Description = v.Value
		case "additionalOperations":
			if version.Major == 3 && version.Minor >= 2 {
				additional = v
			}
		default:
			ops[k.Value] = v
		}
	}

	for _, method := range methods {
		node, ok := ops[method]
		if !ok || isNull(node) {
			continue
		}
		op, err := decodeOperation(method, node, key.Value, source)
		if err != nil {
			return nil, err
		}
		item.Operations = append(item.Operations, op)
	}

	if additional != nil && additional.Kind == yaml.MappingNode {
		for k, v := range mappingPairs(additional) {
			if isNull(v) {
				continue
			}
			op, err := decodeOperation(k.Value, v, key.Value, source)
			if err != nil {
				return nil, err
			}
			item.Operations = append(item.Operations, op)
		}
	}
	return item, nil
}

func decodeOperation(method string, node *yaml.Node, path, source string) (*Operation, error) {
	if node.Kind != yaml.MappingNode {
		return nil, nodeError(source, node, fmt.Sprintf("operation %s %s must be a mapping", method, path))
	}
	op := &Operation{}
	if err := node.Decode(op); err != nil {
		return nil, &oaserrors.ParseError{
			Path:    source,
			Line:    node.Line,
			Column:  node.Column,
			Message: fmt.Sprintf("operation %s %s", method, path),
			Cause:   err,
		}
	}
	op.Method = method
	return op, nil
}

// mappingPairs iterates the key/value pairs of a mapping node in order,
// following aliases on values.
func mappingPairs(n *yaml.Node) iter.Seq2[*yaml.Node, *yaml.Node] {
	return func(yield func(key, val *yaml.Node) bool) {
		m := resolveAlias(n)
		if m == nil || m.Kind != yaml.MappingNode {
			return
		}
		for i := 0; i+1 < len(m.Content); i += 2 {
			if !yield(m.Content[i], resolveAlias(m.Content[i+1])) {
				return
			}
		}
	}
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	for k, v := range mappingPairs(n) {
		if k.Value == key {
			return v
		}
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func nodeError(source string, n *yaml.Node, msg string) error {
	return &oaserrors.ParseError{Path: source, Line: n.Line, Column: n.Column, Message: msg}
}
