// Package entities contains domain entities
package entities

import (
	"strings"

	"github.com/deweni2/yt-media-bot/internal/domain/media/consts"
)

// Requester identifies the user who pressed a download button
type Requester struct {
	ID        int64
	FirstName string
}

// DownloadRequest describes one button press to be turned into a file
type DownloadRequest struct {
	URL               string
	Mode              consts.Mode
	Requester         Requester
	OriginalMessageID int
}

// DownloadResult is what the download worker hands back to the orchestrator
type DownloadResult struct {
	FilePath string
	Title    string
	Uploader string
	Duration int64 // whole seconds; negative means unknown
	WebURL   string
}

// VideoMeta is the provider-resolved metadata for a piece of content
type VideoMeta struct {
	ID       string
	Title    string
	Uploader string
	Duration int64 // whole seconds
	WebURL   string
}

// Stream is one selectable encoded track offered by the source platform
type Stream struct {
	Itag          int
	MimeType      string
	Quality       string
	Bitrate       int
	Width         int
	Height        int
	AudioChannels int
	ContentLength int64
}

// IsAudioOnly reports whether the stream carries audio without video
func (s Stream) IsAudioOnly() bool {
	return strings.HasPrefix(s.MimeType, "audio/")
}

// IsProgressive reports whether the stream carries both video and audio
func (s Stream) IsProgressive() bool {
	return strings.HasPrefix(s.MimeType, "video/") && s.AudioChannels > 0
}
