// Package oaspathtree builds a tree of the URL paths declared by one or more
// OpenAPI Specification (OAS) documents and renders it as a diagram.
//
// # Overview
//
// The module consists of three packages:
//
//   - parser: Read the paths, operations and version of an OAS document
//   - pathtree: Merge labelled path sources into a segment tree, annotate
//     nodes, compare sources, and export Mermaid, DOT or SVG diagrams
//   - oaserrors: Typed errors shared by both, usable with errors.Is/As
//
// Supported document versions are OAS 2.0 (Swagger) and OAS 3.x, including
// the OAS 3.2 "query" method and additionalOperations.
//
// # Quick Start
//
// Render one document as a Mermaid flowchart:
//
//	doc, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	tree, err := pathtree.FromSource(pathtree.DocumentSource(doc), "api")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := tree.WriteMermaid(os.Stdout); err != nil {
//		log.Fatal(err)
//	}
//
// Merge two revisions and list paths missing from either:
//
//	tree := pathtree.New()
//	_ = tree.AttachAll(pathtree.DocumentSource(v1), "v1")
//	_ = tree.AttachAll(pathtree.DocumentSource(v2), "v2")
//	for _, row := range tree.Compare() {
//		if !row.InAll() {
//			fmt.Println(row.Path, row.Missing())
//		}
//	}
//
// # Command Line and MCP
//
// The oaspathtree command wraps the same operations: "tree" renders
// diagrams, "compare" prints a presence table, and "mcp" serves the
// path_tree and compare_paths tools to MCP clients over stdio.
package oaspathtree
