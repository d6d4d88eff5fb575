// Package consts contains constants for the media domain
package consts

// Platform identifies the video platform detected in a message
type Platform string

// Supported platforms
const (
	PlatformNone    Platform = ""
	PlatformYouTube Platform = "youtube"
)

// Mode is the requested output kind
type Mode string

// Download modes
const (
	ModeAudio Mode = "audio"
	ModeVideo Mode = "video"
)

// Valid reports whether the mode is one of the supported download modes
func (m Mode) Valid() bool {
	return m == ModeAudio || m == ModeVideo
}

// Callback data layout: "yt|<mode>|<original_message_id>"
const (
	CallbackPrefix    = "yt"
	CallbackSeparator = "|"

	// CallbackPattern validates callback data before dispatch
	CallbackPattern = `^yt\|(?:audio|video)\|\d+$`
)

// Developer credit shown on keyboards and uploads
const (
	DeveloperLabel = "Developer (@deweni2)"
	DeveloperURL   = "https://t.me/deweni2"
)

// Command represents a bot command
type Command struct {
	Name        string
	Description string
}

// Bot commands
var (
	CommandStart = Command{Name: "start", Description: "Start the bot"}
	CommandHelp  = Command{Name: "help", Description: "Show help message"}
)
