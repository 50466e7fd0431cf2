package pathtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaspathtree/oaserrors"
)

func TestMergeAdditionalData(t *testing.T) {
	t.Run("overwrites existing keys", func(t *testing.T) {
		n := NewRoot()
		require.NoError(t, n.MergeAdditionalData(map[string][]string{"k": {"a"}}))
		require.NoError(t, n.MergeAdditionalData(map[string][]string{"k": {"b"}}))
		assert.Equal(t, map[string][]string{"k": {"b"}}, n.AdditionalData())
	})

	t.Run("keeps other keys", func(t *testing.T) {
		n := NewRoot()
		require.NoError(t, n.MergeAdditionalData(map[string][]string{"a": {"1"}}))
		require.NoError(t, n.MergeAdditionalData(map[string][]string{"b": {"2"}}))
		assert.Equal(t, map[string][]string{"a": {"1"}, "b": {"2"}}, n.AdditionalData())
	})

	t.Run("empty map is a no-op", func(t *testing.T) {
		n := NewRoot()
		require.NoError(t, n.MergeAdditionalData(map[string][]string{}))
		assert.Empty(t, n.AdditionalData())
	})

	t.Run("nil map is rejected", func(t *testing.T) {
		err := NewRoot().MergeAdditionalData(nil)
		assert.ErrorIs(t, err, oaserrors.ErrInvalidArgument)
	})

	t.Run("caller slices are copied", func(t *testing.T) {
		n := NewRoot()
		values := []string{"a"}
		require.NoError(t, n.MergeAdditionalData(map[string][]string{"k": values}))
		values[0] = "mutated"
		assert.Equal(t, []string{"a"}, n.AdditionalData()["k"])
	})

	t.Run("leaves path items and children alone", func(t *testing.T) {
		root := NewRoot()
		n, err := root.Attach("/a", "v1", Operations{"get"})
		require.NoError(t, err)
		_, err = root.Attach("/a/b", "v1", Operations{"get"})
		require.NoError(t, err)

		require.NoError(t, n.MergeAdditionalData(map[string][]string{"owner": {"team"}}))
		assert.Equal(t, []string{"v1"}, n.Labels())
		assert.Len(t, n.Children(), 1)
	})
}

func TestMergeAnnotations(t *testing.T) {
	newTree := func(t *testing.T) *Tree {
		t.Helper()
		tree := New()
		for _, p := range []string{"/users", "/users/{id}"} {
			_, err := tree.Attach(p, "v1", Operations{"get"})
			require.NoError(t, err)
		}
		return tree
	}

	t.Run("merges by URL path", func(t *testing.T) {
		tree := newTree(t)
		err := tree.MergeAnnotations(Annotations{
			"/users/{id}": {"owner": {"identity"}},
			"/":           {"service": {"accounts"}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"identity"}, tree.Find("/users/{id}").AdditionalData()["owner"])
		assert.Equal(t, []string{"accounts"}, tree.Root().AdditionalData()["service"])
	})

	t.Run("unknown path leaves tree unchanged", func(t *testing.T) {
		tree := newTree(t)
		err := tree.MergeAnnotations(Annotations{
			"/users":   {"owner": {"identity"}},
			"/missing": {"owner": {"nobody"}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrInvalidArgument)
		assert.Contains(t, err.Error(), `"/missing"`)
		assert.Empty(t, tree.Find("/users").AdditionalData())
	})

	t.Run("nil annotations", func(t *testing.T) {
		assert.ErrorIs(t, newTree(t).MergeAnnotations(nil), oaserrors.ErrInvalidArgument)
	})
}

func TestLoadAnnotations(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		in := `
/users/{id}:
  owner: [identity-team]
  tier:
    - gold
    - silver
`
		got, err := LoadAnnotations(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, Annotations{
			"/users/{id}": {
				"owner": {"identity-team"},
				"tier":  {"gold", "silver"},
			},
		}, got)
	})

	t.Run("json", func(t *testing.T) {
		got, err := LoadAnnotations(strings.NewReader(`{"/": {"k": ["v"]}}`))
		require.NoError(t, err)
		assert.Equal(t, Annotations{"/": {"k": {"v"}}}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := LoadAnnotations(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("wrong shape", func(t *testing.T) {
		_, err := LoadAnnotations(strings.NewReader("- just\n- a list\n"))
		assert.ErrorIs(t, err, oaserrors.ErrParse)
	})
}

func TestCollectAnnotations(t *testing.T) {
	tree := New()
	for _, p := range []string{"/users", "/users/{id}", "/orders"} {
		_, err := tree.Attach(p, "v1", Operations{"get"})
		require.NoError(t, err)
	}
	require.NoError(t, tree.MergeAnnotations(Annotations{
		"/users/{id}": {"owner": {"identity"}},
		"/orders":     {"tier": {"gold", "silver"}},
	}))

	t.Run("whole tree", func(t *testing.T) {
		assert.Equal(t, Annotations{
			"/users/{id}": {"owner": {"identity"}},
			"/orders":     {"tier": {"gold", "silver"}},
		}, tree.Annotations())
	})

	t.Run("subtree only", func(t *testing.T) {
		assert.Equal(t, Annotations{
			"/users/{id}": {"owner": {"identity"}},
		}, CollectAnnotations(tree.Find("/users")))
	})

	t.Run("values are copies", func(t *testing.T) {
		got := tree.Annotations()
		got["/orders"]["tier"][0] = "changed"
		assert.Equal(t, []string{"gold", "silver"}, tree.Find("/orders").AdditionalData()["tier"])
	})

	t.Run("nil root", func(t *testing.T) {
		assert.Empty(t, CollectAnnotations(nil))
	})
}
