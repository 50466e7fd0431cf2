package pathutil

import (
	"path/filepath"
	"regexp"
	"strings"
)

// PathParamRegex matches path template parameters like {paramName}.
// It captures the parameter name inside the braces.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

const (
	// URLSeparator separates segments of an OpenAPI path template.
	URLSeparator = "/"
	// TreeSeparator joins segments of a tree node's assembled path. It is
	// distinct from URLSeparator so template text never collides with the
	// tree's own path representation.
	TreeSeparator = `\`
)

// SplitTemplate strips exactly one leading "/" from a path template and
// splits the remainder on "/". The result is never empty: "/" yields a
// single empty segment, and "/a/" yields ["a", ""].
func SplitTemplate(template string) []string {
	template = strings.TrimPrefix(template, URLSeparator)
	return strings.Split(template, URLSeparator)
}

// JoinTreePath appends segment to a parent's assembled tree path.
func JoinTreePath(parent, segment string) string {
	return parent + TreeSeparator + segment
}

// TreeToURL converts an assembled tree path back into a URL path template.
// The empty root path maps to "/".
func TreeToURL(treePath string) string {
	if treePath == "" {
		return URLSeparator
	}
	return strings.ReplaceAll(treePath, TreeSeparator, URLSeparator)
}

// ParamName returns the parameter name of a "{name}" segment, or "" when the
// segment is a literal.
func ParamName(segment string) string {
	if !strings.HasPrefix(segment, "{") {
		return ""
	}
	m := PathParamRegex.FindStringSubmatch(segment)
	if m == nil {
		return ""
	}
	return m[1]
}

// BaseLabel returns a file's base name without its extension, e.g. "v1" for
// "specs/v1.yaml". It returns "" for "-" (stdin) and for names that are only
// an extension.
func BaseLabel(file string) string {
	if file == "" || file == "-" {
		return ""
	}
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
