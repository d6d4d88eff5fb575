package caption

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deweni2/yt-media-bot/internal/domain/media/entities"
)

func TestEscape_ReservedCharacters(t *testing.T) {
	for _, r := range markdownReserved {
		in := string(r)
		out := Escape(in)
		assert.Equal(t, `\`+in, out, "character %q must get exactly one backslash", in)
	}
}

func TestEscape_MixedText(t *testing.T) {
	assert.Equal(t, `Song \(Official\) \- Part 1\.`, Escape("Song (Official) - Part 1."))
	assert.Equal(t, "plain text", Escape("plain text"))
	assert.Equal(t, "", Escape(""))
}

func TestEscape_NotIdempotent(t *testing.T) {
	// Single-pass escaping: re-escaping escapes the backslash's neighbor again.
	once := Escape("a.b")
	twice := Escape(once)
	assert.Equal(t, `a\.b`, once)
	assert.NotEqual(t, once, twice)
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{75, "1m 15s"},
		{3600, "1h 0m 0s"},
		{3661, "1h 1m 1s"},
		{-1, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSeconds(tt.seconds))
		})
	}
}

func TestMention(t *testing.T) {
	got := Mention(entities.Requester{ID: 42, FirstName: "A.da"})
	assert.Equal(t, `[A\.da](tg://user?id=42)`, got)
}

func TestBuild_FixedOrder(t *testing.T) {
	result := &entities.DownloadResult{
		FilePath: "/tmp/x.mp4",
		Title:    "Never Gonna Give You Up",
		Uploader: "Rick Astley",
		Duration: 213,
		WebURL:   "https://youtu.be/dQw4w9WgXcQ",
	}
	requester := entities.Requester{ID: 7, FirstName: "Bob"}

	got := Build(result, requester)
	lines := strings.Split(got, "\n")

	assert.Len(t, lines, 5)
	assert.Equal(t, `*Never Gonna Give You Up*`, lines[0])
	assert.Equal(t, `Uploader: Rick Astley`, lines[1])
	assert.Equal(t, `Duration: 3m 33s`, lines[2])
	assert.Equal(t, `Requested by: [Bob](tg://user?id=7)`, lines[3])
	assert.Equal(t, `Source: https://youtu\.be/dQw4w9WgXcQ`, lines[4])
}

func TestBuild_EscapesEachFieldOnce(t *testing.T) {
	result := &entities.DownloadResult{
		Title:    "A.B",
		Uploader: "C-D",
		Duration: 5,
		WebURL:   "https://e.f",
	}

	got := Build(result, entities.Requester{ID: 1, FirstName: "X"})

	assert.Contains(t, got, `A\.B`)
	assert.Contains(t, got, `C\-D`)
	assert.Contains(t, got, `https://e\.f`)
	assert.NotContains(t, got, `\\`, "fields must be escaped exactly once")
}

func TestBuild_MissingOptionalFields(t *testing.T) {
	result := &entities.DownloadResult{
		Duration: -1,
		WebURL:   "https://youtu.be/dQw4w9WgXcQ",
	}

	got := Build(result, entities.Requester{ID: 1, FirstName: "X"})

	assert.Contains(t, got, "Unknown title")
	assert.NotContains(t, got, "Uploader:")
	assert.Contains(t, got, "Duration: Unknown")
}
