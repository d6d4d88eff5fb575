// Package media contains the media download domain module
package media

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/deweni2/yt-media-bot/config"
	telegramDelivery "github.com/deweni2/yt-media-bot/internal/domain/media/delivery/telegram"
	"github.com/deweni2/yt-media-bot/internal/domain/media/deps"
	"github.com/deweni2/yt-media-bot/internal/domain/media/usecase/buissines"
	"github.com/deweni2/yt-media-bot/internal/domain/media/workers"
	"github.com/deweni2/yt-media-bot/internal/infrastructure/telegram"
)

// Module provides media domain components for fx dependency injection
var Module = fx.Module("media",
	// Workers
	fx.Provide(providePool),
	fx.Provide(provideFetcher),

	// UseCase
	fx.Provide(provideUseCase),

	// Delivery - Telegram (needs raw bot from infrastructure)
	fx.Provide(provideTelegramHandlers),
	fx.Provide(telegramDelivery.NewRouter),

	// Wire cyclic dependency and register routes
	fx.Invoke(wireAndRegister),
)

// providePool creates the bounded download pool from config
func providePool(cfg *config.DownloadsConfig, logger zerolog.Logger) *workers.Pool {
	return workers.NewPool(cfg.Workers, logger)
}

// provideFetcher creates the download worker on top of the video provider
func provideFetcher(provider deps.VideoProvider, pool *workers.Pool, cfg *config.DownloadsConfig, logger zerolog.Logger) *workers.Fetcher {
	return workers.NewFetcher(provider, pool, cfg.MaxFileSize, logger)
}

// provideUseCase creates the orchestrating use case
func provideUseCase(fetcher *workers.Fetcher, links deps.LinkCache, cfg *config.DownloadsConfig, logger zerolog.Logger) *buissines.UseCase {
	return buissines.NewUseCase(fetcher, links, cfg.Dir, logger)
}

// provideTelegramHandlers creates Telegram handlers with raw bot
func provideTelegramHandlers(uc *buissines.UseCase, bot *telegram.Bot, logger zerolog.Logger) *telegramDelivery.Handlers {
	return telegramDelivery.NewHandlers(uc, bot.Raw(), logger.With().Str("component", "telegram-handlers").Logger())
}

// wireAndRegister resolves cyclic dependency and registers routes
func wireAndRegister(
	uc *buissines.UseCase,
	handlers *telegramDelivery.Handlers,
	router *telegramDelivery.Router,
	bot *telegram.Bot,
) {
	// Handlers implements deps.MediaSender interface
	// This resolves the cyclic dependency: UseCase -> MediaSender <- Handlers -> UseCase
	uc.SetSender(handlers)

	// Register Telegram routes
	router.RegisterRoutes(bot.Raw())
}
