package pathtree

import (
	"iter"

	"github.com/erraggy/oaspathtree/parser"
)

// PathItem is the metadata a source attaches to a path. The tree only needs
// the set of operation keys (typically HTTP methods) it exposes.
type PathItem interface {
	OperationKeys() []string
}

// Operations is a PathItem made of a literal list of operation keys.
type Operations []string

// OperationKeys implements PathItem.
func (o Operations) OperationKeys() []string { return o }

// Source supplies path templates and their metadata in a stable order.
type Source interface {
	Paths() iter.Seq2[string, PathItem]
}

// PathEntry pairs a path template with its metadata.
type PathEntry struct {
	Path string
	Item PathItem
}

// PathList is a Source backed by an ordered slice.
type PathList []PathEntry

// Paths implements Source.
func (l PathList) Paths() iter.Seq2[string, PathItem] {
	return func(yield func(string, PathItem) bool) {
		for _, e := range l {
			if !yield(e.Path, e.Item) {
				return
			}
		}
	}
}

// DocumentSource adapts a parsed document to a Source, in document order.
// It returns nil for a nil document.
func DocumentSource(doc *parser.Document) Source {
	if doc == nil {
		return nil
	}
	return documentSource{doc: doc}
}

type documentSource struct {
	doc *parser.Document
}

func (s documentSource) Paths() iter.Seq2[string, PathItem] {
	return func(yield func(string, PathItem) bool) {
		for path, item := range s.doc.All() {
			if !yield(path, item) {
				return
			}
		}
	}
}
