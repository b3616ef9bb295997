package web

import "sync"

type cacheEntry struct {
	hash uint64
	data []byte
}

// cache is a fixed size ring of the frames recently sent to a client,
// keyed by their hash. The client keeps the same ring, so a cached frame
// can be referred to by its index.
type cache struct {
	cache []*cacheEntry
	idx   int
	size  int
	sync.RWMutex
}

func newCache(size int) *cache {
	c := &cache{
		cache: make([]*cacheEntry, size),
		size:  size,
	}
	for i := 0; i < size; i++ {
		c.cache[i] = &cacheEntry{}
	}

	return c
}

// add stores data under hash, evicting the oldest entry, and returns the
// index it was stored at.
func (c *cache) add(hash uint64, data []byte) int {
	c.Lock()
	defer c.Unlock()

	i := c.idx
	c.cache[i].hash = hash
	c.cache[i].data = data
	c.idx = (c.idx + 1) % c.size

	return i
}

// index returns the position of hash in the cache, or -1.
func (c *cache) index(hash uint64) int {
	c.RLock()
	defer c.RUnlock()

	for i, e := range c.cache {
		if e.data != nil && e.hash == hash {
			return i
		}
	}

	return -1
}
