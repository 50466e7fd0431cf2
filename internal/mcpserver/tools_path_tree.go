package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oaspathtree/pathtree"
)

type pathTreeInput struct {
	Specs       []specInput                    `json:"specs"                 jsonschema:"OAS documents to merge; each is recorded under its label"`
	Format      string                         `json:"format,omitempty"      jsonschema:"Diagram format: mermaid, dot, or svg (default from OASPATHTREE_DEFAULT_FORMAT)"`
	Root        string                         `json:"root,omitempty"        jsonschema:"Render only the subtree under this URL path, e.g. /users"`
	Annotations map[string]map[string][]string `json:"annotations,omitempty" jsonschema:"Key/value data merged onto nodes, keyed by URL path"`
}

type pathTreeOutput struct {
	Format     string   `json:"format"`
	Labels     []string `json:"labels"`
	Nodes      int      `json:"nodes"`
	Terminals  int      `json:"terminals"`
	Parameters int      `json:"parameters"`
	MaxDepth   int      `json:"max_depth"`
	Diagram    string   `json:"diagram"`

	// Annotations holds the merged data of annotated nodes under the rendered root
	Annotations pathtree.Annotations `json:"annotations,omitempty"`
}

func handlePathTree(ctx context.Context, _ *mcp.CallToolRequest, input pathTreeInput) (*mcp.CallToolResult, pathTreeOutput, error) {
	format := strings.ToLower(input.Format)
	if format == "" {
		format = cfg.DefaultFormat
	}
	if !validFormat(format) {
		return errResult(fmt.Errorf("invalid format %q; valid formats: %s, %s, %s", input.Format, formatMermaid, formatDOT, formatSVG)), pathTreeOutput{}, nil
	}

	tree, labels, err := buildTree(ctx, input.Specs)
	if err != nil {
		return errResult(err), pathTreeOutput{}, nil
	}
	if input.Annotations != nil {
		if err := tree.MergeAnnotations(input.Annotations); err != nil {
			return errResult(err), pathTreeOutput{}, nil
		}
	}

	root := tree.Root()
	if input.Root != "" {
		if root = tree.Find(input.Root); root == nil {
			return errResult(fmt.Errorf("root %q is not in the tree", input.Root)), pathTreeOutput{}, nil
		}
	}

	diagram, err := render(ctx, root, format)
	if err != nil {
		return errResult(err), pathTreeOutput{}, nil
	}

	stats := tree.Stats()
	return nil, pathTreeOutput{
		Format:      format,
		Labels:      labels,
		Nodes:       stats.Nodes,
		Terminals:   stats.Terminals,
		Parameters:  stats.Parameters,
		MaxDepth:    stats.MaxDepth,
		Diagram:     diagram,
		Annotations: annotationsOrNil(pathtree.CollectAnnotations(root)),
	}, nil
}

func render(ctx context.Context, root *pathtree.Node, format string) (string, error) {
	switch format {
	case formatDOT:
		var sb strings.Builder
		if err := pathtree.WriteDOT(&sb, root); err != nil {
			return "", err
		}
		return sb.String(), nil
	case formatSVG:
		svg, err := pathtree.RenderSVG(ctx, root)
		if err != nil {
			return "", err
		}
		return string(svg), nil
	default:
		return pathtree.MermaidString(root)
	}
}

func annotationsOrNil(a pathtree.Annotations) pathtree.Annotations {
	if len(a) == 0 {
		return nil
	}
	return a
}
