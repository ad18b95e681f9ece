package ioresolve

type cacheKey struct {
	kind string
	key  string
}

// Cache keeps entities already resolved during one run, so repeated
// references skip the database round-trip. Resolutions land in a
// pending layer first; the importer promotes them with Commit after the
// row transaction commits, or drops them with Discard when it rolls
// back. The cache lives for one run and is discarded with it.
type Cache struct {
	committed map[cacheKey]any
	pending   map[cacheKey]any
}

func newCache() *Cache {
	return &Cache{
		committed: make(map[cacheKey]any),
		pending:   make(map[cacheKey]any),
	}
}

func (c *Cache) get(kind, key string) (any, bool) {
	if rec, ok := c.pending[cacheKey{kind, key}]; ok {
		return rec, true
	}
	rec, ok := c.committed[cacheKey{kind, key}]
	return rec, ok
}

func (c *Cache) put(kind, key string, rec any) {
	c.pending[cacheKey{kind, key}] = rec
}

func (c *Cache) commit() {
	for k, rec := range c.pending {
		c.committed[k] = rec
	}
	clear(c.pending)
}

func (c *Cache) discard() {
	clear(c.pending)
}

func cacheGet[T any](c *Cache, kind, key string) (*T, bool) {
	rec, ok := c.get(kind, key)
	if !ok {
		return nil, false
	}
	typed, ok := rec.(*T)
	return typed, ok
}
