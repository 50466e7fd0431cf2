package pathtree

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaspathtree/oaserrors"
	"github.com/erraggy/oaspathtree/parser"
)

func TestAttach_SharedPrefix(t *testing.T) {
	root := NewRoot()
	_, err := root.Attach("/users", "v1", Operations{"get"})
	require.NoError(t, err)
	_, err = root.Attach("/users/{id}", "v1", Operations{"get"})
	require.NoError(t, err)

	require.Len(t, root.Children(), 1)
	users := root.Child("users")
	require.NotNil(t, users)
	assert.Equal(t, `\users`, users.Path())
	require.Len(t, users.Children(), 1)

	id := users.Child("{id}")
	require.NotNil(t, id)
	assert.Equal(t, `\users\{id}`, id.Path())
	assert.Equal(t, "/users/{id}", id.URLPath())
	assert.True(t, users.IsTerminal())
	assert.True(t, id.IsTerminal())
}

func TestAttach_TwoLabelsOneNode(t *testing.T) {
	root := NewRoot()
	n1, err := root.Attach("/items", "v1", Operations{"get"})
	require.NoError(t, err)
	n2, err := root.Attach("/items", "v2", Operations{"get", "post"})
	require.NoError(t, err)

	assert.Same(t, n1, n2)
	assert.Equal(t, []string{"v1", "v2"}, n1.Labels())
	item, ok := n1.PathItem("v2")
	require.True(t, ok)
	assert.Equal(t, []string{"get", "post"}, item.OperationKeys())
	assert.Equal(t, "GET_POST", n1.Classification())
}

func TestAttach_DuplicateLabel(t *testing.T) {
	root := NewRoot()
	_, err := root.Attach("/items", "v1", Operations{"get"})
	require.NoError(t, err)

	_, err = root.Attach("/items", "v1", Operations{"post"})
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrDuplicateLabel)

	var dup *oaserrors.DuplicateLabelError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "v1", dup.Label)
	assert.Equal(t, "/items", dup.Path)

	// The first item stays.
	item, _ := root.Child("items").PathItem("v1")
	assert.Equal(t, []string{"get"}, item.OperationKeys())
}

func TestAttach_Segments(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantPath string
	}{
		{"root", "/", ""},
		{"trailing slash stops at last segment", "/a/", `\a`},
		{"empty segment ends the walk", "/a//b", `\a`},
		{"no leading slash", "a/b", `\a\b`},
		{"only one leading slash stripped", "//a", ""},
		{"parameters are literal", "/{userId}", `\{userId}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewRoot()
			n, err := root.Attach(tt.path, "v1", Operations{"get"})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, n.Path())
		})
	}
}

func TestAttach_CaseSensitiveAndParamNames(t *testing.T) {
	root := NewRoot()
	for _, p := range []string{"/users/{id}", "/users/{userId}", "/Users"} {
		_, err := root.Attach(p, "v1", Operations{"get"})
		require.NoError(t, err)
	}
	assert.Len(t, root.Children(), 2)
	assert.Len(t, root.Child("users").Children(), 2)
}

func TestAttach_InvalidArguments(t *testing.T) {
	var nilItem *parser.PathItem
	tests := []struct {
		name  string
		path  string
		label string
		item  PathItem
		arg   string
	}{
		{"empty path", "", "v1", Operations{"get"}, "path"},
		{"empty label", "/a", "", Operations{"get"}, "label"},
		{"nil item", "/a", "v1", nil, "item"},
		{"typed nil item", "/a", "v1", nilItem, "item"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewRoot()
			n, err := root.Attach(tt.path, tt.label, tt.item)
			assert.Nil(t, n)
			var argErr *oaserrors.InvalidArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.arg, argErr.Argument)
			assert.Empty(t, root.Children(), "nothing should be created")
		})
	}
}

func TestAttachAll(t *testing.T) {
	t.Run("attaches in source order", func(t *testing.T) {
		root := NewRoot()
		src := PathList{
			{Path: "/b", Item: Operations{"get"}},
			{Path: "/a", Item: Operations{"post"}},
		}
		require.NoError(t, root.AttachAll(src, "v1"))
		children := root.Children()
		require.Len(t, children, 2)
		assert.Equal(t, "b", children[0].Segment())
		assert.Equal(t, "a", children[1].Segment())
	})

	t.Run("first error returned unmodified", func(t *testing.T) {
		root := NewRoot()
		src := PathList{
			{Path: "/a", Item: Operations{"get"}},
			{Path: "/a", Item: Operations{"post"}},
			{Path: "/c", Item: Operations{"get"}},
		}
		err := root.AttachAll(src, "v1")
		var dup *oaserrors.DuplicateLabelError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "/a", dup.Path)
		assert.NotNil(t, root.Child("a"), "earlier paths stay attached")
		assert.Nil(t, root.Child("c"), "later paths are not attached")
	})

	t.Run("nil source", func(t *testing.T) {
		err := NewRoot().AttachAll(nil, "v1")
		assert.ErrorIs(t, err, oaserrors.ErrInvalidArgument)
	})

	t.Run("empty label", func(t *testing.T) {
		err := NewRoot().AttachAll(PathList{}, "")
		assert.ErrorIs(t, err, oaserrors.ErrInvalidArgument)
	})

	t.Run("logs through tree logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := parser.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
		tree := New(WithLogger(logger))
		require.NoError(t, tree.AttachAll(PathList{{Path: "/a/b", Item: Operations{"get"}}}, "v1"))
		out := buf.String()
		assert.Contains(t, out, "pathtree: created node")
		assert.Contains(t, out, "pathtree: attached source")
		assert.Contains(t, out, "paths=1")
	})
}

const petstoreYAML = `openapi: 3.0.3
info:
  title: Petstore
paths:
  /pets:
    get: {operationId: listPets}
    post: {operationId: createPet}
  /pets/{petId}:
    delete: {operationId: deletePet}
    get: {operationId: getPet}
`

func TestFromSource_Document(t *testing.T) {
	doc, err := parser.ParseWithOptions(parser.WithBytes([]byte(petstoreYAML)))
	require.NoError(t, err)

	tree, err := FromSource(DocumentSource(doc), "petstore")
	require.NoError(t, err)

	pets := tree.Find("/pets")
	require.NotNil(t, pets)
	assert.Equal(t, "GET_POST", pets.Classification())

	pet := tree.Find("/pets/{petId}")
	require.NotNil(t, pet)
	assert.True(t, pet.IsParameter())
	assert.Equal(t, "petId", pet.ParameterName())
	assert.Equal(t, "DELETE_GET", pet.Classification())

	has, err := pet.HasOperations("petstore")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestFromSource_Invalid(t *testing.T) {
	_, err := FromSource(nil, "v1")
	assert.ErrorIs(t, err, oaserrors.ErrInvalidArgument)

	_, err = FromSource(DocumentSource(nil), "v1")
	assert.ErrorIs(t, err, oaserrors.ErrInvalidArgument)

	_, err = FromSource(PathList{}, "")
	assert.ErrorIs(t, err, oaserrors.ErrInvalidArgument)
}
