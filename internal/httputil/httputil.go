// Package httputil provides HTTP method constants and the operation-key
// ordering used for each OpenAPI version.
package httputil

import (
	"slices"
	"strings"
)

// HTTP Method Constants
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OAS 3.0+ only
	MethodQuery   = "query" // OAS 3.2+ only
)

// oas2Methods are the fixed operation fields of a Swagger 2.0 path item,
// in the order the specification lists them.
var oas2Methods = []string{
	MethodGet,
	MethodPut,
	MethodPost,
	MethodDelete,
	MethodOptions,
	MethodHead,
	MethodPatch,
}

var oas3Methods = append(slices.Clone(oas2Methods), MethodTrace)

var oas32Methods = append(slices.Clone(oas3Methods), MethodQuery)

// Methods returns the fixed operation fields for a path item of the given
// major/minor OAS version. The returned slice must not be modified.
func Methods(major, minor int) []string {
	switch {
	case major < 3:
		return oas2Methods
	case major == 3 && minor < 2:
		return oas3Methods
	default:
		return oas32Methods
	}
}

// IsMethod reports whether key is one of the fixed operation fields known
// to any supported OAS version. Matching is case-insensitive.
func IsMethod(key string) bool {
	return slices.Contains(oas32Methods, strings.ToLower(key))
}
