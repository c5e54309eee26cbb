package blog

import (
	"sync"
	"time"

	"github.com/angelikatyborska/blog/views"
)

// ContentCache keeps a loaded content snapshot and its resolved route
// table in memory with a TTL, so the server does not re-read and re-render
// the markdown tree on every request. Content edits on disk show up after
// the TTL or an explicit Invalidate.
type ContentCache struct {
	mu       sync.RWMutex
	content  *Content
	resolved []ResolvedPage
	nav      []views.NavLink
	fetched  time.Time
	ttl      time.Duration
	store    *Store
	homeSlug string
}

// NewContentCache creates a ContentCache backed by the given Store.
func NewContentCache(s *Store, homeSlug string, ttl time.Duration) *ContentCache {
	return &ContentCache{store: s, homeSlug: homeSlug, ttl: ttl}
}

func (c *ContentCache) valid() bool {
	return c.content != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	c.content = nil
	c.resolved = nil
	c.nav = nil
	c.mu.Unlock()
}

func (c *ContentCache) load() error {
	content, err := c.store.Load()
	if err != nil {
		return err
	}
	resolved, err := ResolvePages(content.Pages, c.homeSlug)
	if err != nil {
		return err
	}
	c.content = content
	c.resolved = resolved
	c.nav = NavLinks(resolved)
	c.fetched = time.Now()
	return nil
}

// Snapshot returns the cached content, resolved pages, and navigation
// links after ensuring the cache is fresh. It tries a read lock first and
// only takes a write lock when a reload is needed.
func (c *ContentCache) Snapshot() (*Content, []ResolvedPage, []views.NavLink, error) {
	c.mu.RLock()
	if c.valid() {
		content, resolved, nav := c.content, c.resolved, c.nav
		c.mu.RUnlock()
		return content, resolved, nav, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid() {
		if err := c.load(); err != nil {
			return nil, nil, nil, err
		}
	}
	return c.content, c.resolved, c.nav, nil
}
