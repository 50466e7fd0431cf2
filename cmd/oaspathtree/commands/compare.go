package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
)

// CompareFlags contains flags for the compare command
type CompareFlags struct {
	OnlyDiff bool
	Labels   labelList
	Verbose  bool
}

// SetupCompareFlags creates and configures a FlagSet for the compare command.
// Returns the FlagSet and a CompareFlags struct with bound flag variables.
func SetupCompareFlags() (*flag.FlagSet, *CompareFlags) {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	flags := &CompareFlags{}

	fs.BoolVar(&flags.OnlyDiff, "only-diff", false, "only show paths that some spec is missing")
	fs.Var(&flags.Labels, "label", "label for the next spec (repeatable; default: file base name)")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose: log progress to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oaspathtree compare [flags] <file|-> <file>...\n\n")
		Writef(output, "Show which URL paths each OpenAPI document defines.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oaspathtree compare v1.yaml v2.yaml\n")
		Writef(output, "  oaspathtree compare -only-diff -label prod prod.yaml -label staging staging.yaml\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Comparison printed\n")
		Writef(output, "  1    A spec could not be read\n")
	}

	return fs, flags
}

// HandleCompare executes the compare command
func HandleCompare(args []string) error {
	return runCompare(args, os.Stdout)
}

func runCompare(args []string, stdout io.Writer) error {
	fs, flags := SetupCompareFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("compare command requires at least two file paths")
	}

	specs := fs.Args()
	labels, err := resolveLabels(specs, flags.Labels)
	if err != nil {
		return err
	}
	tree, err := loadTree(specs, labels, newLogger(flags.Verbose))
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(stdout)
	table.SetHeader(append([]string{"Path"}, labels...))
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	shown, common := 0, 0
	for _, row := range tree.Compare(labels...) {
		if row.InAll() {
			common++
			if flags.OnlyDiff {
				continue
			}
		}
		cells := make([]string, 0, len(labels)+1)
		cells = append(cells, row.Path)
		for _, label := range labels {
			if row.Labels[label] {
				cells = append(cells, "yes")
			} else {
				cells = append(cells, "-")
			}
		}
		table.Append(cells)
		shown++
	}
	table.Render()

	Writef(stdout, "\n%d paths shown, %d defined by every spec\n", shown, common)
	return nil
}
