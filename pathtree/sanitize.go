package pathtree

import "strings"

// nodeIDReplacements are applied in order. Later steps assume earlier ones
// ran: deleting "}" can expose a "default" that the last step must catch.
var nodeIDReplacements = [][2]string{
	{TreeSeparator, "/"},
	{"{", ":"},
	{"}", ""},
	{".", "_"},
	{";", "_"},
	{"-", "_"},
	// "default" is a reserved word in Mermaid's class syntax.
	{"default", "def_ault"},
}

// SanitizeNodeID turns an assembled tree path into a Mermaid node identifier.
// The result is stable under repeated application.
func SanitizeNodeID(path string) string {
	for _, r := range nodeIDReplacements {
		path = strings.ReplaceAll(path, r[0], r[1])
	}
	return path
}

// nodeID is the diagram identifier of n: "/" for the root, otherwise its
// sanitized path.
func nodeID(n *Node) string {
	if n.path == "" {
		return RootSegment
	}
	return SanitizeNodeID(n.path)
}
