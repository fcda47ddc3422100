package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRUCache - потокобезопасный LRU кэш с TTL. Просроченные записи
// вычищаются фоновой горутиной библиотеки.
type LRUCache struct {
	lru *expirable.LRU[string, []byte]
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		lru: expirable.NewLRU[string, []byte](capacity, nil, ttl),
	}
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	return c.lru.Get(key)
}

func (c *LRUCache) Set(key string, value []byte) {
	c.lru.Add(key, value)
}

func (c *LRUCache) Delete(key string) {
	c.lru.Remove(key)
}

func (c *LRUCache) Size() int {
	return c.lru.Len()
}

func (c *LRUCache) Purge() {
	c.lru.Purge()
}
