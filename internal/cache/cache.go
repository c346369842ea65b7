package cache

import (
	"context"
	"sync"
)

// Entry is a cached image payload.
type Entry struct {
	Data        []byte
	ContentType string
}

// Client is an in-process store for uploaded image previews. Like a browser
// object URL, an entry lives until its owner releases it or the process
// exits. Lookups fail safe: anything missing behaves like a miss.
type Client struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// New creates an empty cache.
func New() *Client {
	return &Client{entries: make(map[string]Entry)}
}

// Get returns the entry for key, or nil when missing.
func (c *Client) Get(ctx context.Context, key string) *Entry {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	return &e
}

// Set stores a payload under key, replacing any previous one.
func (c *Client) Set(ctx context.Context, key string, data []byte, contentType string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = Entry{Data: data, ContentType: contentType}
}

// Delete removes keys. Unknown keys are ignored.
func (c *Client) Delete(ctx context.Context, keys ...string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
}

// Len returns the number of stored entries. Used by tests.
func (c *Client) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
