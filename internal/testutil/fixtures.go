// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaspathtree/internal/fileutil"
)

// PathSpec declares one path template and the operation keys defined on it.
type PathSpec struct {
	Path    string
	Methods []string
}

// NewOAS3Document builds a minimal OAS 3.0.3 document declaring paths in the
// given order. It is returned as a yaml.Node so that key order survives
// marshaling; each operation gets an operationId of method+index.
func NewOAS3Document(title string, paths ...PathSpec) *yaml.Node {
	return newDocument("openapi", "3.0.3", title, paths)
}

// NewOAS2Document builds a minimal Swagger 2.0 document. See [NewOAS3Document].
func NewOAS2Document(title string, paths ...PathSpec) *yaml.Node {
	return newDocument("swagger", "2.0", title, paths)
}

func newDocument(versionKey, version, title string, paths []PathSpec) *yaml.Node {
	pathsNode := mapping()
	for i, p := range paths {
		item := mapping()
		for _, m := range p.Methods {
			op := mapping(scalar("operationId"), scalar(m+strconv.Itoa(i)))
			item.Content = append(item.Content, scalar(m), op)
		}
		pathsNode.Content = append(pathsNode.Content, scalar(p.Path), item)
	}
	return &yaml.Node{
		Kind: yaml.DocumentNode,
		Content: []*yaml.Node{mapping(
			scalar(versionKey), quoted(version),
			scalar("info"), mapping(scalar("title"), scalar(title), scalar("version"), quoted("1.0.0")),
			scalar("paths"), pathsNode,
		)},
	}
}

func mapping(content ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: content}
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func quoted(v string) *yaml.Node {
	n := scalar(v)
	n.Style = yaml.DoubleQuotedStyle
	return n
}

// WriteTempYAML marshals a document to YAML and writes it to name in a
// temporary directory. Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, name string, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTemp(t, name, string(data))
}

// WriteTemp writes content to name in a temporary directory and returns the
// path. The file is automatically cleaned up when the test completes.
func WriteTemp(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), fileutil.OwnerReadWrite); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return tmpFile
}
