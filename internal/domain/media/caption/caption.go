// Package caption builds the MarkdownV2 caption attached to uploaded files
package caption

import (
	"fmt"
	"strings"

	"github.com/deweni2/yt-media-bot/internal/domain/media/entities"
)

// markdownReserved is the character set escaped for Telegram MarkdownV2.
// Escaping is applied exactly once per field; metadata that already contains
// escape sequences is not protected against double-escaping.
const markdownReserved = "_`*[]()#:+-=~|{}.!>"

// Escape prefixes every reserved MarkdownV2 character with a backslash.
// Single pass; applying it twice is intentionally not idempotent.
func Escape(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(markdownReserved, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatSeconds renders a duration as "HhMmSs" with leading zero-valued
// units omitted: 75 -> "1m 15s", 3661 -> "1h 1m 1s", 0 -> "0s".
// A negative value stands for an unparsable duration and renders "Unknown".
func FormatSeconds(seconds int64) string {
	if seconds < 0 {
		return "Unknown"
	}

	s := seconds % 60
	m := (seconds / 60) % 60
	h := seconds / 3600

	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// Mention builds a MarkdownV2 user mention for the requester
func Mention(requester entities.Requester) string {
	return fmt.Sprintf("[%s](tg://user?id=%d)", Escape(requester.FirstName), requester.ID)
}

// Build produces the fixed-order caption block: bolded title, uploader line
// (if present), duration line (if present), requester mention and source URL.
func Build(result *entities.DownloadResult, requester entities.Requester) string {
	title := result.Title
	if title == "" {
		title = "Unknown title"
	}

	lines := []string{fmt.Sprintf("*%s*", Escape(title))}
	if result.Uploader != "" {
		lines = append(lines, fmt.Sprintf("Uploader: %s", Escape(result.Uploader)))
	}
	lines = append(lines, fmt.Sprintf("Duration: %s", FormatSeconds(result.Duration)))
	lines = append(lines, fmt.Sprintf("Requested by: %s", Mention(requester)))
	lines = append(lines, fmt.Sprintf("Source: %s", Escape(result.WebURL)))

	return strings.Join(lines, "\n")
}
