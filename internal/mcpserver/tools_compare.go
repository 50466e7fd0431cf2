package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type comparePathsInput struct {
	Specs    []specInput `json:"specs"               jsonschema:"OAS documents to compare (at least 2)"`
	OnlyDiff bool        `json:"only_diff,omitempty" jsonschema:"Only return paths that some spec is missing"`
	Offset   int         `json:"offset,omitempty"    jsonschema:"Skip the first N rows"`
	Limit    int         `json:"limit,omitempty"     jsonschema:"Maximum rows to return (default from OASPATHTREE_COMPARE_LIMIT)"`
}

type compareRow struct {
	Path    string   `json:"path"`
	In      []string `json:"in"`
	Missing []string `json:"missing,omitempty"`
}

type comparePathsOutput struct {
	Labels   []string     `json:"labels"`
	Total    int          `json:"total"`
	Common   int          `json:"common"`
	Returned int          `json:"returned"`
	Rows     []compareRow `json:"rows,omitempty"`
}

func handleComparePaths(ctx context.Context, _ *mcp.CallToolRequest, input comparePathsInput) (*mcp.CallToolResult, comparePathsOutput, error) {
	if len(input.Specs) < 2 {
		return errResult(fmt.Errorf("compare_paths requires at least 2 specs (got %d)", len(input.Specs))), comparePathsOutput{}, nil
	}

	tree, labels, err := buildTree(ctx, input.Specs)
	if err != nil {
		return errResult(err), comparePathsOutput{}, nil
	}

	presence := tree.Compare(labels...)
	output := comparePathsOutput{Labels: labels}
	var rows []compareRow
	for _, p := range presence {
		if p.InAll() {
			output.Common++
			if input.OnlyDiff {
				continue
			}
		}
		row := compareRow{Path: p.Path, Missing: p.Missing()}
		for _, label := range labels {
			if p.Labels[label] {
				row.In = append(row.In, label)
			}
		}
		rows = append(rows, row)
	}

	output.Total = len(rows)
	output.Rows = paginate(rows, input.Offset, input.Limit)
	output.Returned = len(output.Rows)
	return nil, output, nil
}
