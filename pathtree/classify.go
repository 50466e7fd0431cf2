package pathtree

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OtherClass is the classification token of a node with no operations.
const OtherClass = "OTHER"

// ColorClass binds a classification token to a fill color.
type ColorClass struct {
	// Token is the normalized operation-key set, e.g. "DELETE_GET"
	Token string
	// Fill is the CSS/Graphviz color name
	Fill string
}

// colorClasses is emitted in this order as classDef lines. Tokens missing
// from the table still get a class line and render unstyled.
var colorClasses = []ColorClass{
	{Token: "GET", Fill: "lightSteelBlue"},
	{Token: "POST", Fill: "SteelBlue"},
	{Token: "GET_POST", Fill: "forestGreen"},
	{Token: "DELETE_GET_PATCH", Fill: "yellowGreen"},
	{Token: "DELETE_GET_PUT", Fill: "olive"},
	{Token: "DELETE_GET", Fill: "DarkSeaGreen"},
	{Token: "DELETE", Fill: "tomato"},
	{Token: OtherClass, Fill: "white"},
}

// ColorClasses returns a copy of the fixed color table in declaration order.
func ColorClasses() []ColorClass {
	return slices.Clone(colorClasses)
}

// FillFor returns the fill color for token, if the table has one.
func FillFor(token string) (string, bool) {
	i := slices.IndexFunc(colorClasses, func(c ColorClass) bool { return c.Token == token })
	if i < 0 {
		return "", false
	}
	return colorClasses[i].Fill, true
}

// ClassifyKeys normalizes a set of operation keys into a classification
// token: deduplicated, uppercased, sorted and joined with "_". Empty keys
// are ignored; no keys yields [OtherClass].
func ClassifyKeys(keys []string) string {
	upper := cases.Upper(language.Und)
	norm := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			norm = append(norm, upper.String(k))
		}
	}
	if len(norm) == 0 {
		return OtherClass
	}
	slices.Sort(norm)
	norm = slices.Compact(norm)
	return strings.Join(norm, "_")
}

// Classification returns the token for every operation key recorded at n,
// across all labels.
func (n *Node) Classification() string {
	var keys []string
	for _, item := range n.pathItems {
		keys = append(keys, item.OperationKeys()...)
	}
	return ClassifyKeys(keys)
}
