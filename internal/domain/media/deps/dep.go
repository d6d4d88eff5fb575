// Package deps contains interface definitions for the media domain dependencies
package deps

import (
	"context"

	"github.com/deweni2/yt-media-bot/internal/domain/media/entities"
)

// VideoProvider resolves a URL against the external video-info provider.
// The real implementation wraps the YouTube client; tests substitute a fake.
type VideoProvider interface {
	// Resolve fetches metadata and the selectable streams for a URL
	Resolve(ctx context.Context, url string) (ResolvedVideo, error)
}

// ResolvedVideo is one resolved piece of content with its streams
type ResolvedVideo interface {
	// Meta returns the content metadata
	Meta() entities.VideoMeta

	// Streams returns every selectable track the platform offers
	Streams() []entities.Stream

	// Download fetches one stream into dir and returns the local file path
	Download(ctx context.Context, stream entities.Stream, dir string) (string, error)
}

// MediaSender defines the Telegram operations the orchestrator needs.
// This interface breaks the cyclic dependency between UseCase and the
// Telegram handlers, which implement it.
type MediaSender interface {
	// SendMessage sends a plain text message to a chat
	SendMessage(ctx context.Context, chatID int64, text string) error

	// SendMessageAndGetID sends a text message and returns its message ID
	SendMessageAndGetID(ctx context.Context, chatID int64, text string) (int, error)

	// DeleteMessage deletes a previously sent message
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error

	// SendAudio uploads a local audio file with a MarkdownV2 caption
	SendAudio(ctx context.Context, chatID int64, path, caption string) error

	// SendVideo uploads a local video file with a MarkdownV2 caption
	SendVideo(ctx context.Context, chatID int64, path, caption string) error

	// AnswerCallback acknowledges a callback query, optionally as an alert
	AnswerCallback(ctx context.Context, callbackID, text string, showAlert bool) error
}

// LinkCache remembers the URL carried by each incoming message so a later
// button press can recover it by message ID
type LinkCache interface {
	// Remember stores the URL for a message ID
	Remember(messageID int, url string)

	// Lookup returns the URL for a message ID, if still cached
	Lookup(messageID int) (string, bool)
}
