// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oaspathtree capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oaspathtree"
	"github.com/erraggy/oaspathtree/parser"
	"github.com/erraggy/oaspathtree/pathtree"
)

const serverInstructions = `oaspathtree MCP server: merges the paths of one or more OpenAPI documents into a URL tree, renders it as a Mermaid or Graphviz diagram, and compares which paths each document defines.

Each spec is recorded under a label (default: the file's base name, or specN for inline content and URLs). Labels must be unique within a call.

Configuration: defaults are configurable via OASPATHTREE_* environment variables set in your MCP client config.

Key settings:
- OASPATHTREE_DEFAULT_FORMAT (default: mermaid) - diagram format when none is requested (mermaid, dot, svg)
- OASPATHTREE_MAX_SPECS (default: 10) - maximum specs per call
- OASPATHTREE_MAX_INLINE_BYTES (default: 10485760) - maximum size of inline content
- OASPATHTREE_COMPARE_LIMIT (default: 100) - default page size for compare_paths
- OASPATHTREE_CACHE_ENABLED (default: true) - cache parsed specs for the session
- OASPATHTREE_CACHE_TTL (default: 15m) - lifetime of cached specs
- OASPATHTREE_ALLOW_PRIVATE_IPS (default: false) - allow URL inputs on private networks`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oaspathtree", Version: oaspathtree.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "path_tree",
		Description: "Merge the paths of one or more OpenAPI documents into a URL path tree and render it as a diagram. Each node is classified by the HTTP methods defined on it across all specs (GET, GET_POST, DELETE_GET, ..., OTHER when none). Formats: mermaid (default, configurable via OASPATHTREE_DEFAULT_FORMAT), dot (Graphviz source), svg (rendered in-process). Use root to render only the subtree under a URL path such as /users. Use annotations to attach key/value data to nodes by URL path; they appear in dot and svg node labels and in the annotations field of the result.",
	}, handlePathTree)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare_paths",
		Description: "Compare which URL paths each of two or more OpenAPI documents defines. Returns one row per path with the labels that define it and the labels missing it, in tree order. Use only_diff=true to drop paths every spec defines. Use offset/limit to paginate (default limit configurable via OASPATHTREE_COMPARE_LIMIT).",
	}, handleComparePaths)
}

// buildTree resolves every spec and attaches it under its label. Labels
// must be unique within one call.
func buildTree(ctx context.Context, specs []specInput) (*pathtree.Tree, []string, error) {
	if len(specs) == 0 {
		return nil, nil, fmt.Errorf("at least one spec is required")
	}
	if len(specs) > cfg.MaxSpecs {
		return nil, nil, fmt.Errorf("too many specs: %d (maximum %d; set OASPATHTREE_MAX_SPECS to increase)", len(specs), cfg.MaxSpecs)
	}

	tree := pathtree.New(pathtree.WithLogger(parser.NewSlogAdapter(nil)))
	labels := make([]string, 0, len(specs))
	seen := make(map[string]int, len(specs))
	for i, s := range specs {
		label := s.label(i)
		if prev, ok := seen[label]; ok {
			return nil, nil, fmt.Errorf("specs[%d] and specs[%d] share label %q; set label explicitly", prev, i, label)
		}
		seen[label] = i

		doc, err := s.resolve(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("specs[%d]: %w", i, err)
		}
		if err := tree.AttachAll(pathtree.DocumentSource(doc), label); err != nil {
			return nil, nil, fmt.Errorf("specs[%d]: %w", i, err)
		}
		labels = append(labels, label)
	}
	return tree, labels, nil
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.CompareLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.CompareLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
