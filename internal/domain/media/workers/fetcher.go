package workers

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/deweni2/yt-media-bot/internal/domain/media/consts"
	"github.com/deweni2/yt-media-bot/internal/domain/media/deps"
	"github.com/deweni2/yt-media-bot/internal/domain/media/entities"
	mediaerrors "github.com/deweni2/yt-media-bot/internal/domain/media/errors"
)

// Fetcher turns one download request into a local file plus metadata.
// It runs on the bounded pool so blocking downloads never stall dispatch.
// No retries: every failure propagates as a single descriptive error.
type Fetcher struct {
	provider    deps.VideoProvider
	pool        *Pool
	maxFileSize int64
	logger      zerolog.Logger
}

// NewFetcher creates a fetcher using the given provider and pool
func NewFetcher(provider deps.VideoProvider, pool *Pool, maxFileSize int64, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		provider:    provider,
		pool:        pool,
		maxFileSize: maxFileSize,
		logger:      logger.With().Str("component", "fetcher").Logger(),
	}
}

// Fetch resolves the URL, picks the stream for the mode, downloads it into a
// per-request subdirectory of dir and returns the file path with metadata.
func (f *Fetcher) Fetch(ctx context.Context, url string, mode consts.Mode, dir string) (*entities.DownloadResult, error) {
	var result *entities.DownloadResult

	err := f.pool.Do(ctx, func() error {
		var err error
		result, err = f.fetch(ctx, url, mode, dir)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (f *Fetcher) fetch(ctx context.Context, url string, mode consts.Mode, dir string) (*entities.DownloadResult, error) {
	f.logger.Info().Str("url", url).Str("mode", string(mode)).Msg("Resolving video")

	video, err := f.provider.Resolve(ctx, url)
	if err != nil {
		f.logger.Warn().Str("url", url).Err(err).Msg("Failed to resolve video")
		return nil, mediaerrors.SourceUnavailable(err)
	}

	stream, err := SelectStream(video.Streams(), mode)
	if err != nil {
		return nil, err
	}

	// Per-request subdirectory so simultaneous requests never collide.
	// Every failure below removes it again; nothing may accumulate on disk.
	requestDir := filepath.Join(dir, uuid.NewString())
	if err := os.MkdirAll(requestDir, 0o755); err != nil {
		return nil, mediaerrors.DownloadFailed(err)
	}

	path, err := video.Download(ctx, stream, requestDir)
	if err != nil {
		f.logger.Warn().Str("url", url).Err(err).Msg("Download failed")
		_ = os.RemoveAll(requestDir)
		return nil, mediaerrors.DownloadFailed(err)
	}

	path, err = SanitizePath(path)
	if err != nil {
		_ = os.RemoveAll(requestDir)
		return nil, mediaerrors.DownloadFailed(err)
	}

	if err := f.checkSize(path); err != nil {
		_ = os.RemoveAll(requestDir)
		return nil, err
	}

	meta := video.Meta()
	f.logger.Info().
		Str("url", url).
		Str("path", path).
		Str("title", meta.Title).
		Msg("Download completed")

	return &entities.DownloadResult{
		FilePath: path,
		Title:    meta.Title,
		Uploader: meta.Uploader,
		Duration: meta.Duration,
		WebURL:   url,
	}, nil
}

// checkSize enforces the size ceiling after the download completes.
// A file exactly at the ceiling passes; one byte over fails.
func (f *Fetcher) checkSize(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return mediaerrors.DownloadFailed(err)
	}

	if info.Size() > f.maxFileSize {
		return mediaerrors.FileTooLarge(info.Size(), f.maxFileSize)
	}

	return nil
}

// SelectStream picks the stream for a mode: the highest-bitrate audio-only
// track for audio, the highest-resolution progressive track for video.
func SelectStream(streams []entities.Stream, mode consts.Mode) (entities.Stream, error) {
	var best entities.Stream
	found := false

	for _, s := range streams {
		switch mode {
		case consts.ModeAudio:
			if !s.IsAudioOnly() {
				continue
			}
			if !found || s.Bitrate > best.Bitrate {
				best = s
				found = true
			}
		case consts.ModeVideo:
			if !s.IsProgressive() {
				continue
			}
			if !found || s.Height > best.Height {
				best = s
				found = true
			}
		}
	}

	if !found {
		if mode == consts.ModeAudio {
			return entities.Stream{}, mediaerrors.ErrNoAudioStream
		}
		return entities.Stream{}, mediaerrors.ErrNoVideoStream
	}

	return best, nil
}

// SanitizeFilename replaces every character outside [A-Za-z0-9_\-. ] in the
// base name with an underscore; the directory component is preserved.
func SanitizeFilename(path string) string {
	dir, base := filepath.Split(path)
	return dir + SanitizeBaseName(base)
}

// SanitizeBaseName replaces every character outside [A-Za-z0-9_\-. ] with an
// underscore. Unlike SanitizeFilename it treats the whole input as one name,
// so path separators inside a title are neutralized too.
func SanitizeBaseName(name string) string {
	clean := make([]rune, 0, len(name))
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			clean = append(clean, c)
		case c == '_', c == '-', c == '.', c == ' ':
			clean = append(clean, c)
		default:
			clean = append(clean, '_')
		}
	}
	return string(clean)
}

// SanitizePath renames the file on disk to its sanitized name, if different
func SanitizePath(path string) (string, error) {
	clean := SanitizeFilename(path)
	if clean == path {
		return path, nil
	}

	if err := os.Rename(path, clean); err != nil {
		return "", err
	}
	return clean, nil
}
