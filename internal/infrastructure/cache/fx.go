// Package cache contains the in-memory link cache
package cache

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/deweni2/yt-media-bot/internal/domain/media/deps"
)

// Module provides the link cache for fx dependency injection
var Module = fx.Module("cache",
	fx.Provide(provideLinkCache),
)

// provideLinkCache creates the bounded link cache
func provideLinkCache(logger zerolog.Logger) deps.LinkCache {
	return NewLinkCache(DefaultCapacity, logger)
}
