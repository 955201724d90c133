// Package cache provides a small in-process TTL cache. It is handed to its
// consumers explicitly rather than living as package-level state, so tests
// can isolate it and multiple consumers can carry their own instance.
package cache

import (
	"container/list"
	"sync"
	"time"
)

type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
}

// TTLCache is an LRU cache whose entries expire after a per-entry TTL.
type TTLCache[K comparable, V any] struct {
	mu         sync.Mutex
	defaultTTL time.Duration
	maxSize    int
	order      *list.List
	items      map[K]*list.Element
}

func NewTTLCache[K comparable, V any](maxSize int, defaultTTL time.Duration) *TTLCache[K, V] {
	if maxSize <= 0 {
		maxSize = 1
	}
	if defaultTTL <= 0 {
		defaultTTL = time.Second
	}
	return &TTLCache[K, V]{
		defaultTTL: defaultTTL,
		maxSize:    maxSize,
		order:      list.New(),
		items:      make(map[K]*list.Element, maxSize),
	}
}

func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	var zero V
	c.mu.Lock()
	defer c.mu.Unlock()

	element, ok := c.items[key]
	if !ok {
		return zero, false
	}

	ent := element.Value.(*entry[K, V])
	if time.Now().After(ent.expiresAt) {
		c.removeElement(element)
		return zero, false
	}

	c.order.MoveToFront(element)
	return ent.value, true
}

// Put stores a value under key for the given TTL; ttl <= 0 means the
// cache default.
func (c *TTLCache[K, V]) Put(key K, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.items[key]; ok {
		ent := element.Value.(*entry[K, V])
		ent.value = value
		ent.expiresAt = time.Now().Add(ttl)
		c.order.MoveToFront(element)
		return
	}

	element := c.order.PushFront(&entry[K, V]{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
	c.items[key] = element
	c.evictIfNeeded()
}

func (c *TTLCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.items[key]; ok {
		c.removeElement(element)
	}
}

func (c *TTLCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *TTLCache[K, V]) evictIfNeeded() {
	for len(c.items) > c.maxSize {
		element := c.order.Back()
		if element == nil {
			return
		}
		c.removeElement(element)
	}
}

func (c *TTLCache[K, V]) removeElement(element *list.Element) {
	c.order.Remove(element)
	delete(c.items, element.Value.(*entry[K, V]).key)
}
