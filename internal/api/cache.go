package api

import (
	"os"
	"strconv"
	"sync"

	"github.com/agriscope/agriscope/pkg/agronomy"
)

// BoardCache is a thread-safe LRU cache for generated market boards,
// keyed by trading day. Prices stay stable within a day and roll over
// at midnight.
type BoardCache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*boardEntry
	order   []string // oldest first
}

type boardEntry struct {
	board []agronomy.MarketQuote
}

// NewBoardCache creates a cache with the given maximum number of entries.
// If maxSize <= 0, it defaults to 8.
func NewBoardCache(maxSize int) *BoardCache {
	if maxSize <= 0 {
		maxSize = 8
	}
	return &BoardCache{
		maxSize: maxSize,
		entries: make(map[string]*boardEntry),
	}
}

// NewBoardCacheFromEnv creates a cache with size from MARKET_CACHE_SIZE env var.
func NewBoardCacheFromEnv() *BoardCache {
	size := 8
	if v := os.Getenv("MARKET_CACHE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			size = parsed
		}
	}
	return NewBoardCache(size)
}

// Get retrieves the board for a trading day, or nil if not cached.
func (c *BoardCache) Get(day string) []agronomy.MarketQuote {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[day]
	if !ok {
		return nil
	}

	// Move to end (most recently used)
	c.moveToEnd(day)
	return entry.board
}

// Put adds a board to the cache, evicting the oldest day if full.
func (c *BoardCache) Put(day string, board []agronomy.MarketQuote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[day]; ok {
		c.entries[day] = &boardEntry{board: board}
		c.moveToEnd(day)
		return
	}

	// Evict oldest if at capacity
	for len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[day] = &boardEntry{board: board}
	c.order = append(c.order, day)
}

func (c *BoardCache) moveToEnd(day string) {
	for i, k := range c.order {
		if k == day {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, day)
			return
		}
	}
}
