// Package commands provides CLI command handlers for oaspathtree.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/erraggy/oaspathtree/internal/fileutil"
	"github.com/erraggy/oaspathtree/internal/pathutil"
	"github.com/erraggy/oaspathtree/parser"
	"github.com/erraggy/oaspathtree/pathtree"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// stdinLabel is the default label of a document read from stdin.
const stdinLabel = "stdin"

// labelList collects repeated -label flags.
type labelList []string

func (l *labelList) String() string {
	return strings.Join(*l, ",")
}

func (l *labelList) Set(v string) error {
	if v == "" {
		return errors.New("label cannot be empty")
	}
	*l = append(*l, v)
	return nil
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// newLogger returns a debug-level text logger on stderr when verbose is set,
// and a no-op logger otherwise.
func newLogger(verbose bool) parser.Logger {
	if !verbose {
		return parser.NopLogger{}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return parser.NewSlogAdapter(slog.New(handler))
}

// resolveLabels pairs every spec with a label. Explicit labels apply to
// specs in order; the rest default to the file's base name without its
// extension ("stdin" for "-"). Labels must be unique.
func resolveLabels(specs, explicit []string) ([]string, error) {
	if len(explicit) > len(specs) {
		return nil, fmt.Errorf("%d labels given for %d specs", len(explicit), len(specs))
	}
	labels := make([]string, len(specs))
	owner := make(map[string]string, len(specs))
	for i, spec := range specs {
		var label string
		switch {
		case i < len(explicit):
			label = explicit[i]
		case spec == StdinFilePath:
			label = stdinLabel
		default:
			label = pathutil.BaseLabel(spec)
		}
		if label == "" {
			return nil, fmt.Errorf("cannot derive a label from %q; use -label", spec)
		}
		if prev, ok := owner[label]; ok {
			return nil, fmt.Errorf("label %q used by both %s and %s; use -label to disambiguate", label, prev, spec)
		}
		owner[label] = spec
		labels[i] = label
	}
	return labels, nil
}

// loadTree parses every spec and attaches its paths under the matching
// label, in argument order.
func loadTree(specs, labels []string, log parser.Logger) (*pathtree.Tree, error) {
	tree := pathtree.New(pathtree.WithLogger(log))
	stdinUsed := false
	for i, spec := range specs {
		opts := []parser.Option{parser.WithLogger(log)}
		if spec == StdinFilePath {
			if stdinUsed {
				return nil, errors.New("stdin ('-') can only be given once")
			}
			stdinUsed = true
			opts = append(opts, parser.WithReader(os.Stdin), parser.WithSourceName(stdinLabel))
		} else {
			opts = append(opts, parser.WithFilePath(spec))
		}

		doc, err := parser.ParseWithOptions(opts...)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", spec, err)
		}
		if err := tree.AttachAll(pathtree.DocumentSource(doc), labels[i]); err != nil {
			return nil, fmt.Errorf("attaching %s: %w", spec, err)
		}
		log.Info("loaded spec", "spec", spec, "label", labels[i], "version", doc.Version.String(), "paths", len(doc.Paths))
	}
	return tree, nil
}

// writeOutput calls write with stdout, or with a newly created file when
// path is set.
func writeOutput(path string, stdout io.Writer, write func(w io.Writer) error) (err error) {
	if path == "" {
		return write(stdout)
	}
	cleaned, err := pathutil.SanitizeOutputPath(path)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	f, err := os.OpenFile(cleaned, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileutil.ReadableByAll) //nolint:gosec // G304 - path sanitized above
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()
	return write(f)
}
