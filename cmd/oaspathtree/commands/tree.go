package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/oaspathtree/oaserrors"
	"github.com/erraggy/oaspathtree/pathtree"
)

// Diagram formats accepted by the tree command.
const (
	FormatMermaid = "mermaid"
	FormatDOT     = "dot"
	FormatSVG     = "svg"
)

// TreeFlags contains flags for the tree command
type TreeFlags struct {
	Format      string
	Output      string
	Annotations string
	Root        string
	Labels      labelList
	Verbose     bool
}

// SetupTreeFlags creates and configures a FlagSet for the tree command.
// Returns the FlagSet and a TreeFlags struct with bound flag variables.
func SetupTreeFlags() (*flag.FlagSet, *TreeFlags) {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	flags := &TreeFlags{}

	fs.StringVar(&flags.Format, "format", FormatMermaid, "output format: mermaid, dot, or svg")
	fs.StringVar(&flags.Output, "o", "", "output file (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file (default: stdout)")
	fs.StringVar(&flags.Annotations, "annotations", "", "YAML/JSON file of per-path annotations to show in node labels (dot and svg only)")
	fs.StringVar(&flags.Root, "root", "", "render only the subtree under this URL path")
	fs.Var(&flags.Labels, "label", "label for the next spec (repeatable; default: file base name)")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose: log progress to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oaspathtree tree [flags] <file|->...\n\n")
		Writef(output, "Merge the paths of one or more OpenAPI documents into a tree and render it.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oaspathtree tree openapi.yaml\n")
		Writef(output, "  oaspathtree tree -format dot v1.yaml v2.yaml | dot -Tpng > paths.png\n")
		Writef(output, "  oaspathtree tree -format svg -o paths.svg -label old v1.yaml -label new v2.yaml\n")
		Writef(output, "  oaspathtree tree -format svg -annotations owners.yaml -root /users api.yaml\n")
		Writef(output, "\nNode classes:\n")
		Writef(output, "  Each node is classified by the methods defined on it across all specs,\n")
		Writef(output, "  e.g. GET, GET_POST, DELETE_GET, or OTHER when it has none.\n")
	}

	return fs, flags
}

// HandleTree executes the tree command
func HandleTree(args []string) error {
	return runTree(args, os.Stdout)
}

func runTree(args []string, stdout io.Writer) error {
	fs, flags := SetupTreeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("tree command requires at least one file path, or '-' for stdin")
	}
	switch flags.Format {
	case FormatMermaid, FormatDOT, FormatSVG:
	default:
		return &oaserrors.ConfigError{Option: "format", Value: flags.Format, Message: "must be mermaid, dot, or svg"}
	}
	if flags.Annotations != "" && flags.Format == FormatMermaid {
		return &oaserrors.ConfigError{
			Option:  "annotations",
			Value:   flags.Annotations,
			Message: "annotations are rendered only in dot and svg output; add -format dot or -format svg",
		}
	}

	specs := fs.Args()
	labels, err := resolveLabels(specs, flags.Labels)
	if err != nil {
		return err
	}

	log := newLogger(flags.Verbose)
	tree, err := loadTree(specs, labels, log)
	if err != nil {
		return err
	}

	if flags.Annotations != "" {
		if err := mergeAnnotationsFile(tree, flags.Annotations); err != nil {
			return err
		}
	}

	root := tree.Root()
	if flags.Root != "" {
		if root = tree.Find(flags.Root); root == nil {
			return fmt.Errorf("root %q is not in the tree", flags.Root)
		}
	}

	stats := tree.Stats()
	log.Info("built tree", "nodes", stats.Nodes, "terminals", stats.Terminals, "max_depth", stats.MaxDepth)

	return writeOutput(flags.Output, stdout, func(w io.Writer) error {
		switch flags.Format {
		case FormatDOT:
			return pathtree.WriteDOT(w, root)
		case FormatSVG:
			svg, err := pathtree.RenderSVG(context.Background(), root)
			if err != nil {
				return err
			}
			_, err = w.Write(svg)
			return err
		default:
			return pathtree.WriteMermaid(w, root)
		}
	})
}

func mergeAnnotationsFile(tree *pathtree.Tree, path string) error {
	f, err := os.Open(path) //nolint:gosec // G304 - user-supplied CLI argument
	if err != nil {
		return fmt.Errorf("opening annotations: %w", err)
	}
	defer func() { _ = f.Close() }()

	annotations, err := pathtree.LoadAnnotations(f)
	if err != nil {
		return fmt.Errorf("reading annotations %s: %w", path, err)
	}
	if err := tree.MergeAnnotations(annotations); err != nil {
		return fmt.Errorf("merging annotations %s: %w", path, err)
	}
	return nil
}
