// Package detect classifies free-form text as containing a supported video link
package detect

import (
	"regexp"

	"github.com/deweni2/yt-media-bot/internal/domain/media/consts"
)

// youtubeRe recognizes the common YouTube URL shapes: canonical watch URL,
// shortened domain, shorts, embed, /v/ and a bare 11-character video ID path.
// Scheme and www./m. subdomains are optional, matching is case-insensitive.
var youtubeRe = regexp.MustCompile(
	`(?i)(https?://)?(www\.)?(m\.)?(youtube\.com|youtu\.be)/` +
		`(watch\?v=[\w\-]{11}|shorts/[\w\-]{11}|embed/[\w\-]{11}|v/[\w\-]{11}|[\w\-]{11})`,
)

// Detect returns the platform tag for the first supported link found in text,
// or PlatformNone. Pure function; text need not be a whole URL.
func Detect(text string) consts.Platform {
	if text == "" {
		return consts.PlatformNone
	}
	if youtubeRe.MatchString(text) {
		return consts.PlatformYouTube
	}
	return consts.PlatformNone
}
