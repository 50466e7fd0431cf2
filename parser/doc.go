// Package parser reads the paths section of OpenAPI Specification documents.
//
// It supports OAS 2.0 (Swagger) and OAS 3.x in YAML or JSON and keeps path
// items in the order they appear in the source, which is the order the path
// tree uses when creating nodes. Only what the path tree needs is decoded:
// the declared version, info.title, and for each path item its summary and
// operations. $ref path items are recorded but not resolved.
//
// # Quick Start
//
//	doc, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for path, item := range doc.All() {
//		fmt.Println(path, item.OperationKeys())
//	}
//
// # Operation Keys
//
// The fixed operation fields depend on the declared version: OAS 2.0 has
// get, put, post, delete, options, head and patch; OAS 3.0 and 3.1 add trace;
// OAS 3.2 adds query and any additionalOperations (e.g. a custom LINK method).
// Keys are reported as written in the document.
//
// # Errors
//
// Malformed input yields an [oaserrors.ParseError] carrying the source name
// and, where known, the line and column of the offending node.
package parser
