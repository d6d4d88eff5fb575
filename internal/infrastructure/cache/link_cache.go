// Package cache contains the in-memory link cache
package cache

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/deweni2/yt-media-bot/internal/domain/media/deps"
)

// DefaultCapacity bounds how many message links are retained
const DefaultCapacity = 1024

// linkCache implements an in-memory message-ID to URL cache so a button press
// can recover the original link without re-reading the chat history.
// Oldest entries are evicted once capacity is reached.
type linkCache struct {
	data     map[int]string
	order    []int
	capacity int
	mu       sync.RWMutex
	logger   zerolog.Logger
}

// NewLinkCache creates a bounded link cache
func NewLinkCache(capacity int, logger zerolog.Logger) deps.LinkCache {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &linkCache{
		data:     make(map[int]string, capacity),
		order:    make([]int, 0, capacity),
		capacity: capacity,
		logger:   logger.With().Str("component", "link_cache").Logger(),
	}
}

// Remember stores the URL for a message ID, evicting the oldest entry when full
func (c *linkCache) Remember(messageID int, url string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[messageID]; !exists {
		if len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.data, oldest)
			c.logger.Debug().
				Int("message_id", oldest).
				Msg("evicted oldest cached link")
		}
		c.order = append(c.order, messageID)
	}

	c.data[messageID] = url
	c.logger.Debug().
		Int("message_id", messageID).
		Msg("cached link")
}

// Lookup returns the URL for a message ID, if still cached
func (c *linkCache) Lookup(messageID int) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	url, exists := c.data[messageID]
	return url, exists
}
