package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/erraggy/oaspathtree/internal/options"
	"github.com/erraggy/oaspathtree/oaserrors"
)

// DefaultMaxFileSize is the largest document the parser reads by default (64 MiB).
const DefaultMaxFileSize int64 = 64 << 20

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger      Logger
	maxFileSize int64
	sourceName  *string
}

// ParseWithOptions reads the paths of an OpenAPI document using functional
// options. Exactly one input source must be given.
//
// Example:
//
//	doc, err := parser.ParseWithOptions(
//	    parser.WithFilePath("openapi.yaml"),
//	    parser.WithLogger(parser.NewSlogAdapter(nil)),
//	)
func ParseWithOptions(opts ...Option) (*Document, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	data, source, err := cfg.read()
	if err != nil {
		return nil, err
	}
	if cfg.sourceName != nil {
		source = *cfg.sourceName
	}

	doc, err := decodeDocument(data, source, cfg.logger)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	return doc, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		logger:      NopLogger{},
		maxFileSize: DefaultMaxFileSize,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"parser: must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"parser: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, &oaserrors.ConfigError{Option: "input", Cause: err}
	}

	return cfg, nil
}

// read loads the configured input, enforcing the size limit.
func (cfg *parseConfig) read() ([]byte, string, error) {
	switch {
	case cfg.filePath != nil:
		path := filepath.Clean(*cfg.filePath)
		info, err := os.Stat(path)
		if err != nil {
			return nil, path, &oaserrors.ParseError{Path: path, Message: "cannot read file", Cause: err}
		}
		if info.Size() > cfg.maxFileSize {
			return nil, path, &oaserrors.ParseError{
				Path:    path,
				Message: fmt.Sprintf("file size %d exceeds limit %d", info.Size(), cfg.maxFileSize),
			}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, path, &oaserrors.ParseError{Path: path, Message: "cannot read file", Cause: err}
		}
		cfg.logger.Debug("read document", "path", path, "bytes", len(data))
		return data, path, nil
	case cfg.reader != nil:
		data, err := io.ReadAll(io.LimitReader(cfg.reader, cfg.maxFileSize+1))
		if err != nil {
			return nil, "reader", &oaserrors.ParseError{Path: "reader", Message: "cannot read input", Cause: err}
		}
		if int64(len(data)) > cfg.maxFileSize {
			return nil, "reader", &oaserrors.ParseError{
				Path:    "reader",
				Message: fmt.Sprintf("input exceeds limit %d", cfg.maxFileSize),
			}
		}
		return data, "reader", nil
	default:
		if int64(len(cfg.bytes)) > cfg.maxFileSize {
			return nil, "bytes", &oaserrors.ParseError{
				Path:    "bytes",
				Message: fmt.Sprintf("input exceeds limit %d", cfg.maxFileSize),
			}
		}
		return cfg.bytes, "bytes", nil
	}
}

// WithFilePath specifies a local file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		if path == "" {
			return errors.New("parser: file path cannot be empty")
		}
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return errors.New("parser: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return errors.New("parser: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets a structured logger for debug output during parsing.
// By default, no logging is performed.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = OrNop(l)
		return nil
	}
}

// WithMaxFileSize sets the maximum input size in bytes.
// A value of 0 means use the default (64 MiB).
// Returns an error if size is negative.
func WithMaxFileSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size < 0 {
			return errors.New("parser: maxFileSize cannot be negative")
		}
		if size == 0 {
			size = DefaultMaxFileSize
		}
		cfg.maxFileSize = size
		return nil
	}
}

// WithSourceName overrides the SourcePath recorded on the Document. Useful
// for readers and byte slices, which otherwise report "reader" or "bytes".
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
