package parser

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/erraggy/oaspathtree/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstoreOAS3 = `openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets:
    summary: All pets
    post:
      operationId: createPet
    get:
      operationId: listPets
      tags: [pets]
  /pets/{petId}:
    get:
      operationId: showPetById
    delete:
      operationId: deletePet
      deprecated: true
  x-internal:
    get: {}
  /health: {}
`

func TestParseWithOptions_OAS3(t *testing.T) {
	doc, err := ParseWithOptions(WithBytes([]byte(petstoreOAS3)))
	require.NoError(t, err)

	assert.Equal(t, "Petstore", doc.Title)
	assert.Equal(t, 3, doc.Version.Major)
	assert.Equal(t, "3.0.3", doc.Version.String())
	assert.Equal(t, "bytes", doc.SourcePath)

	var paths []string
	for p := range doc.All() {
		paths = append(paths, p)
	}
	assert.Equal(t, []string{"/pets", "/pets/{petId}", "/health"}, paths, "document order, extensions skipped")

	pets := doc.Lookup("/pets")
	require.NotNil(t, pets)
	assert.Equal(t, "All pets", pets.Summary)
	assert.Equal(t, []string{"get", "post"}, pets.OperationKeys(), "canonical method order")
	assert.Equal(t, []string{"pets"}, pets.Operation("get").Tags)
	assert.Equal(t, "createPet", pets.Operation("post").OperationID)

	byID := doc.Lookup("/pets/{petId}")
	require.NotNil(t, byID)
	assert.True(t, byID.Operation("delete").Deprecated)
	assert.Nil(t, byID.Operation("put"))

	health := doc.Lookup("/health")
	require.NotNil(t, health)
	assert.Empty(t, health.OperationKeys())

	assert.Equal(t, 4, doc.OperationCount())
}

func TestParseWithOptions_JSON(t *testing.T) {
	data := `{
  "swagger": "2.0",
  "info": {"title": "Legacy", "version": "1"},
  "paths": {
    "/b": {"get": {}, "trace": {}},
    "/a": {"put": {"operationId": "putA"}}
  }
}`
	doc, err := ParseWithOptions(WithBytes([]byte(data)), WithSourceName("legacy.json"))
	require.NoError(t, err)

	assert.True(t, doc.Version.IsOAS2())
	assert.Equal(t, "legacy.json", doc.SourcePath)
	require.Len(t, doc.Paths, 2)
	assert.Equal(t, "/b", doc.Paths[0].Path)
	assert.Equal(t, []string{"get"}, doc.Paths[0].OperationKeys(), "trace is not an OAS 2.0 operation")
	assert.Equal(t, "putA", doc.Paths[1].Operation("put").OperationID)
}

func TestParseWithOptions_OAS32AdditionalOperations(t *testing.T) {
	data := `openapi: 3.2.0
info: {title: t, version: "1"}
paths:
  /files/{id}:
    query: {}
    get: {}
    additionalOperations:
      LINK: {}
      UNLINK: {}
`
	doc, err := ParseWithOptions(WithReader(strings.NewReader(data)))
	require.NoError(t, err)
	require.Len(t, doc.Paths, 1)
	assert.Equal(t, []string{"get", "query", "LINK", "UNLINK"}, doc.Paths[0].OperationKeys())
}

func TestParseWithOptions_Aliases(t *testing.T) {
	data := `openapi: 3.1.0
info: {title: t, version: "1"}
paths:
  /a: &item
    get: {}
  /b: *item
`
	doc, err := ParseWithOptions(WithBytes([]byte(data)))
	require.NoError(t, err)
	require.Len(t, doc.Paths, 2)
	assert.Equal(t, []string{"get"}, doc.Paths[1].OperationKeys())
}

func TestParseWithOptions_NoPaths(t *testing.T) {
	doc, err := ParseWithOptions(WithBytes([]byte("openapi: 3.1.0\ninfo: {title: t, version: '1'}\n")))
	require.NoError(t, err)
	assert.Empty(t, doc.Paths)
}

func TestParseWithOptions_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantMsg string
		line    int
	}{
		{name: "invalid yaml", data: "openapi: [", wantMsg: "invalid YAML/JSON"},
		{name: "empty document", data: "", wantMsg: "document is empty"},
		{name: "scalar root", data: "hello", wantMsg: "document root must be a mapping", line: 1},
		{name: "missing version", data: "paths: {}", wantMsg: "missing 'openapi' or 'swagger'"},
		{name: "unsupported version", data: "openapi: 4.0.0\npaths: {}", wantMsg: "unsupported version", line: 1},
		{name: "paths not a mapping", data: "openapi: 3.0.0\npaths: [a]", wantMsg: "'paths' must be a mapping", line: 2},
		{name: "operation not a mapping", data: "openapi: 3.0.0\npaths:\n  /a:\n    get: nope", wantMsg: "operation get /a must be a mapping", line: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWithOptions(WithBytes([]byte(tt.data)))
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrParse), "expected ParseError, got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var parseErr *oaserrors.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.line, parseErr.Line)
		})
	}
}

func TestParseWithOptions_InputValidation(t *testing.T) {
	t.Run("no source", func(t *testing.T) {
		_, err := ParseWithOptions()
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))
		assert.Contains(t, err.Error(), "must specify an input source")
	})

	t.Run("two sources", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte("a")), WithReader(strings.NewReader("b")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one input source")
	})

	t.Run("nil reader", func(t *testing.T) {
		_, err := ParseWithOptions(WithReader(nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reader cannot be nil")
	})

	t.Run("negative max size", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte("a")), WithMaxFileSize(-1))
		require.Error(t, err)
	})

	t.Run("size limit enforced", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte(petstoreOAS3)), WithMaxFileSize(10))
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrParse))
		assert.Contains(t, err.Error(), "exceeds limit")
	})

	t.Run("reader size limit enforced", func(t *testing.T) {
		_, err := ParseWithOptions(WithReader(strings.NewReader(petstoreOAS3)), WithMaxFileSize(10))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds limit")
	})
}

func TestParseWithOptions_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "petstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(petstoreOAS3), 0o600))

	doc, err := ParseWithOptions(WithFilePath(path))
	require.NoError(t, err)
	assert.Equal(t, path, doc.SourcePath)
	assert.Len(t, doc.Paths, 3)

	_, err = ParseWithOptions(WithFilePath(filepath.Join(dir, "missing.yaml")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseWithOptions_Logger(t *testing.T) {
	adapter, buf := newBufferedAdapter(slog.LevelDebug)
	_, err := ParseWithOptions(WithBytes([]byte(petstoreOAS3)), WithLogger(adapter))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "decoded paths")
	assert.Contains(t, buf.String(), "paths=3")
}

func TestDocumentLookup(t *testing.T) {
	t.Run("parsed documents are indexed up front", func(t *testing.T) {
		doc, err := ParseWithOptions(WithBytes([]byte(petstoreOAS3)))
		require.NoError(t, err)
		require.NotNil(t, doc.index)
		assert.Len(t, doc.index, 3)

		// Shared documents are read from many goroutines; run with -race.
		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NotNil(t, doc.Lookup("/pets/{petId}"))
				assert.Nil(t, doc.Lookup("/missing"))
			}()
		}
		wg.Wait()
	})

	t.Run("document without paths", func(t *testing.T) {
		doc, err := ParseWithOptions(WithBytes([]byte("openapi: 3.1.0\ninfo: {title: Empty}\n")))
		require.NoError(t, err)
		assert.NotNil(t, doc.index)
		assert.Nil(t, doc.Lookup("/pets"))
	})

	t.Run("hand-built document is scanned", func(t *testing.T) {
		doc := &Document{Paths: []*PathItem{{Path: "/a"}, {Path: "/b"}}}
		require.NotNil(t, doc.Lookup("/b"))
		assert.Equal(t, "/b", doc.Lookup("/b").Path)
		assert.Nil(t, doc.Lookup("/c"))
		assert.Nil(t, doc.index, "lookup must not mutate the document")
	})
}
