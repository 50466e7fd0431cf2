package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/oaspathtree"
)

// VersionFlags contains flags for the version command
type VersionFlags struct {
	Verbose bool
}

// SetupVersionFlags creates and configures a FlagSet for the version command.
func SetupVersionFlags() (*flag.FlagSet, *VersionFlags) {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	flags := &VersionFlags{}

	fs.BoolVar(&flags.Verbose, "v", false, "also print commit, build time and Go version")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oaspathtree version [-v]\n\n")
		Writef(output, "Print the oaspathtree version.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// HandleVersion executes the version command
func HandleVersion(args []string) error {
	return runVersion(args, os.Stdout)
}

func runVersion(args []string, stdout io.Writer) error {
	fs, flags := SetupVersionFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("version takes no arguments, got %q", fs.Arg(0))
	}

	if flags.Verbose {
		Writef(stdout, "%s\n", oaspathtree.BuildInfo())
		return nil
	}
	Writef(stdout, "oaspathtree %s\n", oaspathtree.Version())
	return nil
}
