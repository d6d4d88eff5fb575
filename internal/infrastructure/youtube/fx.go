// Package youtube adapts the YouTube client to the media domain
package youtube

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/deweni2/yt-media-bot/internal/domain/media/deps"
)

// Module provides the YouTube video provider for fx dependency injection
var Module = fx.Module("youtube",
	fx.Provide(provideVideoProvider),
)

// provideVideoProvider creates the YouTube-backed video provider
func provideVideoProvider(logger zerolog.Logger) deps.VideoProvider {
	return NewClient(logger)
}
