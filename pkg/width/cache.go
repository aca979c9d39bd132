// ABOUTME: Fixed-capacity LRU of string widths backing each Measurer
// ABOUTME: Entries live in a slice linked by index; one mutex guards every operation

package width

import "sync"

type cacheEntry struct {
	key        string
	width      int
	prev, next int
}

// cache maps strings to widths and evicts the least recently used entry
// once size entries are held. Slot 0 is the list sentinel.
type cache struct {
	mu      sync.Mutex
	size    int
	index   map[string]int
	entries []cacheEntry
}

func newCache(size int) *cache {
	c := &cache{
		size:    size,
		index:   make(map[string]int, size),
		entries: make([]cacheEntry, 1, size+1),
	}
	return c
}

func (c *cache) unlink(i int) {
	e := &c.entries[i]
	c.entries[e.prev].next = e.next
	c.entries[e.next].prev = e.prev
}

// pushFront links i right after the sentinel.
func (c *cache) pushFront(i int) {
	head := &c.entries[0]
	c.entries[i].prev = 0
	c.entries[i].next = head.next
	c.entries[head.next].prev = i
	head.next = i
}

func (c *cache) get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.index[key]
	if !ok {
		return 0, false
	}
	c.unlink(i)
	c.pushFront(i)
	return c.entries[i].width, true
}

func (c *cache) put(key string, width int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.size <= 0 {
		return
	}
	if _, ok := c.index[key]; ok {
		return
	}

	var i int
	if len(c.index) >= c.size {
		// Reuse the slot of the least recently used entry.
		i = c.entries[0].prev
		c.unlink(i)
		delete(c.index, c.entries[i].key)
	} else {
		c.entries = append(c.entries, cacheEntry{})
		i = len(c.entries) - 1
	}
	c.entries[i].key = key
	c.entries[i].width = width
	c.pushFront(i)
	c.index[key] = i
}

func (c *cache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}
