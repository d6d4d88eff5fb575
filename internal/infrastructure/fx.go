// Package infrastructure contains infrastructure layer components
package infrastructure

import (
	"go.uber.org/fx"

	"github.com/deweni2/yt-media-bot/internal/infrastructure/cache"
	"github.com/deweni2/yt-media-bot/internal/infrastructure/logger"
	"github.com/deweni2/yt-media-bot/internal/infrastructure/telegram"
	"github.com/deweni2/yt-media-bot/internal/infrastructure/youtube"
)

// Module provides all infrastructure components for fx dependency injection
var Module = fx.Module("infrastructure",
	logger.Module,
	telegram.Module,
	youtube.Module,
	cache.Module,
)
