package resolver

import "sync"

// manifestCache memoizes parsed package manifests by pkgfile, in the style
// of internal/cache's FSCache: read outside the lock, write back under it.
// A cached nil means "read and found not to be a package directory" so
// repeated lookups of a non-package path don't re-read the filesystem.
type manifestCache struct {
	mutex   sync.Mutex
	entries map[string]*Manifest
}

func newManifestCache() *manifestCache {
	return &manifestCache{entries: make(map[string]*Manifest)}
}

func (c *manifestCache) get(pkgFile string) (*Manifest, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	m, ok := c.entries[pkgFile]
	return m, ok
}

func (c *manifestCache) set(pkgFile string, m *Manifest) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries[pkgFile] = m
}

// resultCache memoizes resolutions by (dirname(parent), input), per spec §3.
// Concurrent resolutions of the same key may race to compute the value, but
// they converge to the same answer, so the race is harmless (spec §5).
type resultCache struct {
	mutex   sync.Mutex
	entries map[string]cachedResult
}

type cachedResult struct {
	res Resolution
	err error
}

func newResultCache() *resultCache {
	return &resultCache{entries: make(map[string]cachedResult)}
}

func (c *resultCache) get(key string) (cachedResult, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *resultCache) set(key string, res Resolution, err error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries[key] = cachedResult{res: res, err: err}
}
