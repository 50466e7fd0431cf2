/*
Package pathtree merges the path templates of one or more OpenAPI documents
into a single tree keyed by path segment, and renders it as a diagram.

Each node stands for one segment of a URL template ("users", "{id}"). A
node records, per source label, the path item whose template ends there, so
that two versions of an API can be loaded into one tree and compared:

	tree := pathtree.New()
	if err := tree.AttachAll(pathtree.DocumentSource(v1), "v1"); err != nil {
		return err
	}
	if err := tree.AttachAll(pathtree.DocumentSource(v2), "v2"); err != nil {
		return err
	}
	for _, row := range tree.Compare() {
		if !row.InAll() {
			fmt.Println(row.Path, "missing from", row.Missing())
		}
	}

# Annotations

Arbitrary key to list data can be merged onto nodes with
[Node.MergeAdditionalData] or, by URL path, with [Tree.MergeAnnotations].
[LoadAnnotations] reads such a mapping from YAML or JSON.

# Export

[WriteMermaid] emits a left-to-right Mermaid flowchart. Every node is
assigned a class named after the uppercased, sorted set of operation keys
recorded on it across all labels ("GET", "DELETE_GET", ...), or "OTHER"
when it has none; a fixed color table styles the common sets. [WriteDOT]
and [RenderSVG] produce the same graph for Graphviz.

A Tree is not safe for concurrent mutation. Once built it may be read and
exported from multiple goroutines.
*/
package pathtree
