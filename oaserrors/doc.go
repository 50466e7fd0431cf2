// Package oaserrors provides structured error types for the oaspathtree library.
//
// Import path: github.com/erraggy/oaspathtree/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As].
//
// # Error Types
//
//   - [InvalidArgumentError]: nil or empty required input (label, path, path item, source)
//   - [DuplicateLabelError]: a label attached twice at the same terminal node
//   - [ParseError]: YAML/JSON parsing failures and structural issues
//   - [ConfigError]: Invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidArgument]: Matches any [InvalidArgumentError]
//   - [ErrDuplicateLabel]: Matches any [DuplicateLabelError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// A batch attach stops at the first conflicting path. Earlier paths stay in
// the tree, so callers that need atomicity build into a scratch tree:
//
//	err := tree.AttachAll(pathtree.DocumentSource(doc), "v2")
//	var dup *oaserrors.DuplicateLabelError
//	if errors.As(err, &dup) {
//	    fmt.Printf("%s declared twice under %s\n", dup.Path, dup.Label)
//	}
//
// # Error Chaining
//
// [ParseError] and [ConfigError] carry a Cause and support Unwrap():
//
//	var parseErr *oaserrors.ParseError
//	if errors.As(err, &parseErr) && errors.Is(parseErr.Cause, os.ErrNotExist) {
//	    // The document doesn't exist
//	}
package oaserrors
