package filter

import (
	"container/list"
	"sync"

	"github.com/expr-lang/expr/vm"
)

// lruCache is a thread-safe LRU cache of compiled programs keyed by expression
type lruCache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
	mu        sync.Mutex
}

type cacheEntry struct {
	key     string
	program *vm.Program
}

func newLRUCache(size int) *lruCache {
	if size <= 0 {
		size = 1
	}
	return &lruCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

// Get retrieves a program and marks it most recently used
func (c *lruCache) Get(key string) (*vm.Program, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, exists := c.items[key]
	if !exists {
		return nil, false
	}
	c.evictList.MoveToFront(node)
	return node.Value.(*cacheEntry).program, true
}

// Put adds or updates a program, evicting the oldest one when full
func (c *lruCache) Put(key string, program *vm.Program) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, exists := c.items[key]; exists {
		c.evictList.MoveToFront(node)
		node.Value.(*cacheEntry).program = program
		return
	}

	c.items[key] = c.evictList.PushFront(&cacheEntry{key: key, program: program})

	if c.evictList.Len() > c.size {
		oldest := c.evictList.Back()
		c.evictList.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
}

// Len returns the number of cached programs
func (c *lruCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}
