package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Version is the OpenAPI version declared by a document's "openapi" or
// "swagger" field.
type Version struct {
	// Raw is the declared string, e.g. "2.0" or "3.1.0"
	Raw   string
	Major int
	Minor int
	Patch int
	// Prerelease holds a "-rc1" style suffix without the dash
	Prerelease string
}

func (v Version) String() string {
	return v.Raw
}

// IsOAS2 reports whether the document is Swagger 2.0.
func (v Version) IsOAS2() bool {
	return v.Major == 2
}

// ParseVersion parses a declared OAS version string. Supported majors are 2
// (only 2.0) and 3 (any minor, so future 3.x releases still yield a usable
// method set).
func ParseVersion(s string) (Version, error) {
	raw := s
	var prerelease string
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		prerelease = s[idx+1:]
		s = s[:idx]
	}

	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("invalid version format: %q", raw)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > math.MaxInt32 {
			return Version{}, fmt.Errorf("invalid version component %q in %q", part, raw)
		}
		nums[i] = n
	}

	v := Version{Raw: raw, Major: nums[0], Minor: nums[1], Patch: nums[2], Prerelease: prerelease}
	switch {
	case v.Major == 2 && v.Minor == 0:
	case v.Major == 3:
	default:
		return Version{}, fmt.Errorf("unsupported OpenAPI version %q", raw)
	}
	return v, nil
}
