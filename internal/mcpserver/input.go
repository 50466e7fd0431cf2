package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/erraggy/oaspathtree"
	"github.com/erraggy/oaspathtree/internal/pathutil"
	"github.com/erraggy/oaspathtree/parser"
)

// specInput represents the three ways an OAS document can be provided to a
// tool, plus the label its paths are recorded under.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	Label   string `json:"label,omitempty"   jsonschema:"Label the document's paths are recorded under (default: file base name, or specN)"`
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch an OAS document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
}

// label returns the explicit label, the file's base name, or spec<N> for the
// 0-based position index.
func (s specInput) label(index int) string {
	if s.Label != "" {
		return s.Label
	}
	if name := pathutil.BaseLabel(s.File); name != "" {
		return name
	}
	return "spec" + strconv.Itoa(index+1)
}

func (s specInput) validate() error {
	count := 0
	for _, set := range []bool{s.File != "", s.URL != "", s.Content != ""} {
		if set {
			count++
		}
	}
	if count != 1 {
		return fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineBytes {
		return fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASPATHTREE_MAX_INLINE_BYTES to increase",
			len(s.Content), cfg.MaxInlineBytes)
	}
	return nil
}

// cacheKey identifies a parsed document. File entries include the
// modification time so edits invalidate them. It returns "" when the input
// cannot be cached.
func (s specInput) cacheKey() string {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:])
	case s.URL != "":
		return "url:" + s.URL
	}
	return ""
}

// resolve parses the document from whichever input was provided, consulting
// the document cache first.
func (s specInput) resolve(ctx context.Context) (*parser.Document, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	var key string
	if cfg.CacheEnabled {
		key = s.cacheKey()
		if doc := docCache.get(key); doc != nil {
			return doc, nil
		}
	}

	var opts []parser.Option
	switch {
	case s.File != "":
		opts = append(opts, parser.WithFilePath(s.File))
	case s.URL != "":
		data, err := fetchURL(ctx, s.URL)
		if err != nil {
			return nil, err
		}
		opts = append(opts, parser.WithBytes(data), parser.WithSourceName(s.URL))
	default:
		opts = append(opts, parser.WithReader(strings.NewReader(s.Content)), parser.WithSourceName("content"))
	}

	doc, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}
	if key != "" {
		docCache.put(key, doc)
	}
	return doc, nil
}

// fetchURL downloads a document. Unless private addresses are allowed, the
// request goes through the SSRF-guarded client.
func fetchURL(ctx context.Context, url string) ([]byte, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("unsupported URL scheme: %s", url)
	}
	client := &http.Client{Timeout: cfg.FetchTimeout}
	if !cfg.AllowPrivateIPs {
		client = newSafeHTTPClient(cfg.FetchTimeout)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", oaspathtree.UserAgent())
	req.Header.Set("Accept", "application/yaml, application/json;q=0.9, */*;q=0.5")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}
	return readLimited(resp.Body, parser.DefaultMaxFileSize)
}
