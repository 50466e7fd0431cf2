package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oaspathtree/cmd/oaspathtree/commands"
	"github.com/erraggy/oaspathtree/internal/mcpserver"
)

// commandNames lists every top-level command, for typo suggestions.
var commandNames = []string{"tree", "compare", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		if err := commands.HandleVersion(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "tree":
		if err := commands.HandleTree(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "compare":
		if err := commands.HandleCompare(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := mcpserver.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			stop()
			os.Exit(1) //nolint:gocritic // exitAfterDefer: stop is called explicitly above
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the command closest to input within an edit
// distance of 2, or "".
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`oaspathtree - OpenAPI path tree tools

Usage:
  oaspathtree <command> [options]

Commands:
  tree        Merge the paths of OpenAPI documents into a tree and render it
  compare     Show which paths each OpenAPI document defines
  mcp         Run the MCP server over stdio
  version     Show version information (-v for build details)
  help        Show this help message

Examples:
  oaspathtree tree api.yaml
  oaspathtree tree -format svg -o paths.svg v1.yaml v2.yaml
  oaspathtree tree -format dot -annotations owners.yaml -label prod api.yaml
  oaspathtree compare -only-diff v1.yaml v2.yaml

Run 'oaspathtree <command> --help' for more information on a command.`)
}
