package pathtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"nil", nil, OtherClass},
		{"only empty keys", []string{"", ""}, OtherClass},
		{"single", []string{"get"}, "GET"},
		{"sorted", []string{"post", "get"}, "GET_POST"},
		{"deduplicated after uppercasing", []string{"get", "GET", "Get"}, "GET"},
		{"custom method", []string{"COPY", "get"}, "COPY_GET"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyKeys(tt.keys))
		})
	}
}

func TestClassification_AcrossLabels(t *testing.T) {
	root := NewRoot()
	n, err := root.Attach("/a", "v1", Operations{"get"})
	require.NoError(t, err)
	_, err = root.Attach("/a", "v2", Operations{"delete", "get"})
	require.NoError(t, err)
	assert.Equal(t, "DELETE_GET", n.Classification())
}

func TestColorClasses(t *testing.T) {
	classes := ColorClasses()
	require.Len(t, classes, 8)
	assert.Equal(t, ColorClass{Token: "GET", Fill: "lightSteelBlue"}, classes[0])
	assert.Equal(t, ColorClass{Token: OtherClass, Fill: "white"}, classes[len(classes)-1])

	classes[0].Fill = "red"
	fill, ok := FillFor("GET")
	require.True(t, ok)
	assert.Equal(t, "lightSteelBlue", fill, "ColorClasses must return a copy")

	_, ok = FillFor("HEAD")
	assert.False(t, ok)
}
