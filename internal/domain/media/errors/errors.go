// Package errors contains domain-specific errors for the media domain
package errors

import (
	"fmt"

	pkgerrors "github.com/deweni2/yt-media-bot/pkg/errors"
)

// Fixed domain errors
var (
	ErrNoAudioStream = pkgerrors.NewNoStreamFoundError("❌ No audio streams found")
	ErrNoVideoStream = pkgerrors.NewNoStreamFoundError("❌ No video streams found")
	ErrLinkNotFound  = pkgerrors.NewLookupFailedError("Original link not found.")
)

// SourceUnavailable wraps the provider's resolution failure message
func SourceUnavailable(cause error) *pkgerrors.SourceUnavailableError {
	return pkgerrors.NewSourceUnavailableError(fmt.Sprintf("❌ Failed to fetch video info: %v", cause))
}

// DownloadFailed wraps a transfer or I/O failure message
func DownloadFailed(cause error) *pkgerrors.DownloadFailedError {
	return pkgerrors.NewDownloadFailedError(fmt.Sprintf("❌ Failed to download: %v", cause))
}

// FileTooLarge reports a file over the size ceiling
func FileTooLarge(size, limit int64) *pkgerrors.FileTooLargeError {
	return pkgerrors.NewFileTooLargeError(fmt.Sprintf("❌ File is too large: %d bytes (limit %d)", size, limit))
}

// DeliveryFailed wraps an upload rejection from Telegram
func DeliveryFailed(cause error) *pkgerrors.DeliveryFailedError {
	return pkgerrors.NewDeliveryFailedError(fmt.Sprintf("❌ Failed to send file: %v", cause))
}
