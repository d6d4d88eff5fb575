// Package app contains application bootstrap
package app

import (
	"os"

	"go.uber.org/fx"

	"github.com/deweni2/yt-media-bot/config"
	"github.com/deweni2/yt-media-bot/internal/domain"
	"github.com/deweni2/yt-media-bot/internal/infrastructure"
)

// CreateApp creates fx application with all modules
func CreateApp() fx.Option {
	return fx.Options(
		// Configuration
		fx.Provide(config.Out),

		// Infrastructure (logger, telegram bot, youtube client, link cache)
		infrastructure.Module,

		// Domain (media download business logic)
		domain.Module,

		// Downloads directory must exist before the first request
		fx.Invoke(ensureDownloadsDir),
	)
}

// ensureDownloadsDir creates the downloads directory at startup
func ensureDownloadsDir(cfg *config.DownloadsConfig) error {
	return os.MkdirAll(cfg.Dir, 0o755)
}
