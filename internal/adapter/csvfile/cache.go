package csvfile

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/BFavetto/fars/internal/domain"
)

// tableCache holds parsed tables keyed by path. An entry is only served
// while the file's content digest is unchanged.
type tableCache struct {
	entries *lru.Cache[string, cacheEntry]
}

type cacheEntry struct {
	digest uint64
	table  *domain.YearTable
}

func newTableCache(maxEntries int) (*tableCache, error) {
	c, err := lru.New[string, cacheEntry](maxEntries)
	if err != nil {
		return nil, err
	}
	return &tableCache{entries: c}, nil
}

func (c *tableCache) get(path string, digest uint64) (*domain.YearTable, bool) {
	e, ok := c.entries.Get(path)
	if !ok || e.digest != digest {
		return nil, false
	}
	return e.table, true
}

func (c *tableCache) put(path string, digest uint64, table *domain.YearTable) {
	c.entries.Add(path, cacheEntry{digest: digest, table: table})
}

func (c *tableCache) size() int {
	return c.entries.Len()
}
