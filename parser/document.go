package parser

import (
	"iter"
)

// Document is the paths view of an OpenAPI document. Path items are kept in
// the order they appear in the source.
type Document struct {
	// SourcePath is the file path or name the document was read from
	SourcePath string
	// Version is the declared OpenAPI version
	Version Version
	// Title is info.title, if present
	Title string
	// Paths holds every path item under "paths", in document order
	Paths []*PathItem

	index map[string]*PathItem
}

// PathItem describes the operations available on a single path template.
type PathItem struct {
	// Path is the template key, e.g. "/users/{id}"
	Path string
	// Ref is the path item's $ref, if any. References are not resolved.
	Ref         string
	Summary     string
	Description string
	// Operations are ordered by the version's canonical method order, followed
	// by OAS 3.2 additionalOperations in document order.
	Operations []*Operation
	// Line is the 1-based source line of the path key (0 if unknown)
	Line int
}

// Operation is the subset of an OpenAPI operation that the path tree needs.
type Operation struct {
	// Method is the operation key as written, e.g. "get" or a 3.2 custom method
	Method      string   `yaml:"-"`
	OperationID string   `yaml:"operationId,omitempty"`
	Summary     string   `yaml:"summary,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Deprecated  bool     `yaml:"deprecated,omitempty"`
}

// OperationKeys returns the method of every operation defined on the path item.
func (p *PathItem) OperationKeys() []string {
	keys := make([]string, 0, len(p.Operations))
	for _, op := range p.Operations {
		keys = append(keys, op.Method)
	}
	return keys
}

// Operation returns the operation for method, or nil.
func (p *PathItem) Operation(method string) *Operation {
	for _, op := range p.Operations {
		if op.Method == method {
			return op
		}
	}
	return nil
}

// All iterates path items in document order.
func (d *Document) All() iter.Seq2[string, *PathItem] {
	return func(yield func(string, *PathItem) bool) {
		for _, item := range d.Paths {
			if !yield(item.Path, item) {
				return
			}
		}
	}
}

// Lookup returns the path item declared under the exact template key, or nil.
// Documents from the parser carry a prebuilt index, so concurrent lookups are
// safe; a Document assembled by hand is scanned instead.
func (d *Document) Lookup(path string) *PathItem {
	if d.index != nil {
		return d.index[path]
	}
	for _, item := range d.Paths {
		if item.Path == path {
			return item
		}
	}
	return nil
}

func (d *Document) buildIndex() {
	d.index = make(map[string]*PathItem, len(d.Paths))
	for _, item := range d.Paths {
		d.index[item.Path] = item
	}
}

// OperationCount returns the number of operations across all path items.
func (d *Document) OperationCount() int {
	n := 0
	for _, item := range d.Paths {
		n += len(item.Operations)
	}
	return n
}
