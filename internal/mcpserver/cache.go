package mcpserver

import (
	"sync"
	"time"

	"github.com/erraggy/oaspathtree/parser"
)

// docCacheStore is a session-scoped LRU cache of parsed documents. Entries
// expire after cfg.CacheTTL and are removed lazily on lookup or eviction.
// Cached documents are shared between tool calls and must not be mutated.
type docCacheStore struct {
	mu      sync.Mutex
	entries map[string]*docCacheEntry
	maxSize int
	ttl     time.Duration
}

type docCacheEntry struct {
	doc       *parser.Document
	usedAt    time.Time
	expiresAt time.Time
}

var docCache = newDocCache(cfg.CacheMaxSize, cfg.CacheTTL)

func newDocCache(maxSize int, ttl time.Duration) *docCacheStore {
	return &docCacheStore{
		entries: make(map[string]*docCacheEntry),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// get returns a cached document or nil.
func (c *docCacheStore) get(key string) *parser.Document {
	if key == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	now := time.Now()
	if now.After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.usedAt = now
	return e.doc
}

// put stores doc, evicting expired entries and then the least recently used
// one if the cache is full.
func (c *docCacheStore) put(key string, doc *parser.Document) {
	if key == "" || c.maxSize <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		c.evictLocked(now)
	}
	c.entries[key] = &docCacheEntry{doc: doc, usedAt: now, expiresAt: now.Add(c.ttl)}
}

func (c *docCacheStore) evictLocked(now time.Time) {
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	if len(c.entries) < c.maxSize {
		return
	}
	var oldestKey string
	var oldest time.Time
	for k, e := range c.entries {
		if oldestKey == "" || e.usedAt.Before(oldest) {
			oldestKey, oldest = k, e.usedAt
		}
	}
	delete(c.entries, oldestKey)
}

// reset clears all cached entries. Used in tests.
func (c *docCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*docCacheEntry)
}

func (c *docCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
