package usage

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// racyWindow covers the coarsest modification time granularity of common filesystems.
// A file modified within it could be rewritten with the same size and the same
// recorded mtime, so its content is not cached.
const racyWindow = 2 * time.Second

// cacheKey identifies one version of a file, so an edited file is read again.
// Only files whose mtime is older than racyWindow are cached, which keeps a
// same-size edit from hiding behind an unchanged key. A file whose mtime is
// deliberately reset to an earlier value is still served from the cache.
type cacheKey struct {
	path    string
	size    int64
	modTime int64
}

// ContentCache keeps a bounded number of file contents across searches of one run.
type ContentCache struct {
	entries *lru.Cache[cacheKey, []byte]
}

// NewContentCache creates a cache holding at most size files.
func NewContentCache(size int) (*ContentCache, error) {
	entries, err := lru.New[cacheKey, []byte](size)
	if err != nil {
		return nil, err
	}
	return &ContentCache{entries: entries}, nil
}

// Len returns the number of cached files.
func (c *ContentCache) Len() int {
	return c.entries.Len()
}

func (c *ContentCache) get(key cacheKey) ([]byte, bool) {
	return c.entries.Get(key)
}

func (c *ContentCache) add(key cacheKey, content []byte, now time.Time) {
	if now.Sub(time.Unix(0, key.modTime)) < racyWindow {
		return
	}
	c.entries.Add(key, content)
}
