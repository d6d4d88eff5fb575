// Package dto contains data transfer objects for the media domain
package dto

import "github.com/deweni2/yt-media-bot/internal/domain/media/consts"

// IncomingLinkRequest represents one free-text message to inspect for links
type IncomingLinkRequest struct {
	ChatID    int64
	MessageID int
	Text      string
}

// LinkResponse tells the delivery layer what to present
type LinkResponse struct {
	Platform consts.Platform
	Message  string
	// OfferChoice is true when the Audio/Video keyboard should be attached
	OfferChoice bool
	// MessageID is the originating message the keyboard binds to
	MessageID int
}

// DownloadCallbackRequest represents one Audio/Video button press
type DownloadCallbackRequest struct {
	CallbackID        string
	ChatID            int64
	Mode              consts.Mode
	OriginalMessageID int
	// ReplyText is the text of the message the keyboard replied to,
	// used as fallback when the link cache misses
	ReplyText   string
	RequesterID int64
	FirstName   string
}

// CommandResponse represents a response for bot commands
type CommandResponse struct {
	Message string
}
