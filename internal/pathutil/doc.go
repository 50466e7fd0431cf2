// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides path template helpers shared by the path tree,
// the CLI and the MCP server.
//
// # Templates and Tree Paths
//
// An OpenAPI path template such as "/users/{id}/roles" is split into
// segments with [SplitTemplate]. Tree nodes assemble their own path with
// [JoinTreePath], which uses [TreeSeparator] ("\") rather than "/":
//
//	segs := pathutil.SplitTemplate("/users/{id}") // ["users", "{id}"]
//	p := pathutil.JoinTreePath("", segs[0])        // `\users`
//	p = pathutil.JoinTreePath(p, segs[1])          // `\users\{id}`
//	pathutil.TreeToURL(p)                          // "/users/{id}"
//
// [PathParamRegex] and [ParamName] extract parameter names from segments.
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths for security.
// It rejects symlinks:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err
//	}
package pathutil
