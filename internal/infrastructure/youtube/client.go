// Package youtube adapts the YouTube client to the media domain
package youtube

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	ytdl "github.com/kkdai/youtube/v2"
	"github.com/rs/zerolog"

	"github.com/deweni2/yt-media-bot/internal/domain/media/deps"
	"github.com/deweni2/yt-media-bot/internal/domain/media/entities"
	"github.com/deweni2/yt-media-bot/internal/domain/media/workers"
)

// Client resolves YouTube URLs into downloadable content
type Client struct {
	yt     *ytdl.Client
	logger zerolog.Logger
}

// NewClient creates a new YouTube client adapter
func NewClient(logger zerolog.Logger) *Client {
	return &Client{
		yt:     &ytdl.Client{},
		logger: logger.With().Str("component", "youtube-client").Logger(),
	}
}

// Resolve fetches metadata and the selectable streams for a URL
func (c *Client) Resolve(ctx context.Context, url string) (deps.ResolvedVideo, error) {
	video, err := c.yt.GetVideoContext(ctx, url)
	if err != nil {
		c.logger.Warn().Str("url", url).Err(err).Msg("Failed to fetch video info")
		return nil, err
	}

	c.logger.Info().
		Str("video_id", video.ID).
		Str("title", video.Title).
		Int("formats", len(video.Formats)).
		Msg("Video resolved")

	return &resolvedVideo{client: c.yt, video: video, logger: c.logger}, nil
}

// resolvedVideo is one resolved YouTube video with its formats
type resolvedVideo struct {
	client *ytdl.Client
	video  *ytdl.Video
	logger zerolog.Logger
}

// Meta returns the content metadata
func (v *resolvedVideo) Meta() entities.VideoMeta {
	return entities.VideoMeta{
		ID:       v.video.ID,
		Title:    v.video.Title,
		Uploader: v.video.Author,
		Duration: int64(v.video.Duration.Seconds()),
		WebURL:   "https://www.youtube.com/watch?v=" + v.video.ID,
	}
}

// Streams returns every selectable track the platform offers
func (v *resolvedVideo) Streams() []entities.Stream {
	streams := make([]entities.Stream, 0, len(v.video.Formats))
	for _, f := range v.video.Formats {
		streams = append(streams, entities.Stream{
			Itag:          f.ItagNo,
			MimeType:      f.MimeType,
			Quality:       f.QualityLabel,
			Bitrate:       f.Bitrate,
			Width:         f.Width,
			Height:        f.Height,
			AudioChannels: f.AudioChannels,
			ContentLength: f.ContentLength,
		})
	}
	return streams
}

// Download fetches one stream into dir and returns the local file path
func (v *resolvedVideo) Download(ctx context.Context, stream entities.Stream, dir string) (string, error) {
	format := v.findFormat(stream.Itag)
	if format == nil {
		return "", fmt.Errorf("itag %d not offered for video %s", stream.Itag, v.video.ID)
	}

	reader, size, err := v.client.GetStreamContext(ctx, v.video, format)
	if err != nil {
		return "", fmt.Errorf("failed to open stream: %w", err)
	}
	defer reader.Close()

	path := filepath.Join(dir, downloadFilename(v.video.Title, format.MimeType))

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	written, err := io.Copy(file, reader)
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to download stream: %w", err)
	}

	v.logger.Info().
		Str("video_id", v.video.ID).
		Int("itag", stream.Itag).
		Int64("expected_bytes", size).
		Int64("written_bytes", written).
		Msg("Stream downloaded")

	return path, nil
}

func (v *resolvedVideo) findFormat(itag int) *ytdl.Format {
	for i := range v.video.Formats {
		if v.video.Formats[i].ItagNo == itag {
			return &v.video.Formats[i]
		}
	}
	return nil
}

// downloadFilename derives a safe local file name from the raw title.
// Titles routinely contain path separators ("AC/DC - Back in Black"), which
// must never become subdirectories under the request directory.
func downloadFilename(title, mimeType string) string {
	name := workers.SanitizeBaseName(title)
	if name == "" {
		name = "download"
	}
	return name + extensionFor(mimeType)
}

// extensionFor maps a stream MIME type to a filename extension
func extensionFor(mimeType string) string {
	media, _, _ := strings.Cut(mimeType, ";")
	kind, subtype, _ := strings.Cut(strings.TrimSpace(media), "/")

	switch subtype {
	case "mp4":
		if kind == "audio" {
			return ".m4a"
		}
		return ".mp4"
	case "webm":
		if kind == "audio" {
			return ".weba"
		}
		return ".webm"
	case "3gpp":
		return ".3gp"
	default:
		return ".bin"
	}
}
