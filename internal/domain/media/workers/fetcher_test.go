package workers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deweni2/yt-media-bot/internal/domain/media/consts"
	"github.com/deweni2/yt-media-bot/internal/domain/media/deps"
	"github.com/deweni2/yt-media-bot/internal/domain/media/entities"
	pkgerrors "github.com/deweni2/yt-media-bot/pkg/errors"
)

// fakeVideo implements deps.ResolvedVideo with canned streams and a payload
// written on Download.
type fakeVideo struct {
	meta     entities.VideoMeta
	streams  []entities.Stream
	payload  []byte
	filename string
	dlErr    error
}

func (v *fakeVideo) Meta() entities.VideoMeta   { return v.meta }
func (v *fakeVideo) Streams() []entities.Stream { return v.streams }

func (v *fakeVideo) Download(_ context.Context, _ entities.Stream, dir string) (string, error) {
	if v.dlErr != nil {
		return "", v.dlErr
	}
	path := filepath.Join(dir, v.filename)
	if err := os.WriteFile(path, v.payload, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// fakeProvider implements deps.VideoProvider
type fakeProvider struct {
	video *fakeVideo
	err   error
}

func (p *fakeProvider) Resolve(context.Context, string) (deps.ResolvedVideo, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.video, nil
}

var testStreams = []entities.Stream{
	{Itag: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`, Bitrate: 128000, AudioChannels: 2},
	{Itag: 251, MimeType: `audio/webm; codecs="opus"`, Bitrate: 160000, AudioChannels: 2},
	{Itag: 18, MimeType: `video/mp4; codecs="avc1, mp4a"`, Bitrate: 500000, Width: 640, Height: 360, AudioChannels: 2},
	{Itag: 22, MimeType: `video/mp4; codecs="avc1, mp4a"`, Bitrate: 1200000, Width: 1280, Height: 720, AudioChannels: 2},
	{Itag: 137, MimeType: `video/mp4; codecs="avc1"`, Bitrate: 4000000, Width: 1920, Height: 1080},
}

func TestSelectStream_AudioPicksHighestBitrate(t *testing.T) {
	stream, err := SelectStream(testStreams, consts.ModeAudio)
	require.NoError(t, err)
	assert.Equal(t, 251, stream.Itag)
}

func TestSelectStream_VideoPicksHighestProgressiveResolution(t *testing.T) {
	stream, err := SelectStream(testStreams, consts.ModeVideo)
	require.NoError(t, err)
	// 1080p is video-only; the best progressive stream is 720p.
	assert.Equal(t, 22, stream.Itag)
}

func TestSelectStream_NoStreamFound(t *testing.T) {
	videoOnly := []entities.Stream{
		{Itag: 137, MimeType: `video/mp4; codecs="avc1"`, Height: 1080},
	}

	_, err := SelectStream(videoOnly, consts.ModeAudio)
	var nsf *pkgerrors.NoStreamFoundError
	require.ErrorAs(t, err, &nsf)

	audioOnly := []entities.Stream{
		{Itag: 140, MimeType: `audio/mp4`, Bitrate: 128000, AudioChannels: 2},
	}
	_, err = SelectStream(audioOnly, consts.ModeVideo)
	require.ErrorAs(t, err, &nsf)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean name untouched", "/tmp/dl/My Song_01-v2.mp4", "/tmp/dl/My Song_01-v2.mp4"},
		{"reserved chars replaced", "/tmp/dl/a:b?c*d.mp4", "/tmp/dl/a_b_c_d.mp4"},
		{"directory preserved", "/tmp/we?ird/a:b.mp4", "/tmp/we?ird/a_b.mp4"},
		{"unicode replaced", "song été.mp3", "song _t_.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestSanitizeBaseName_NeutralizesSeparators(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AC/DC - Back in Black", "AC_DC - Back in Black"},
		{"24/7 lofi stream", "24_7 lofi stream"},
		{`a\b`, "a_b"},
		{"plain name.mp4", "plain name.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeBaseName(tt.in))
		})
	}
}

func TestFetcher_ChecksSizeCeiling(t *testing.T) {
	payload := []byte("0123456789")

	tests := []struct {
		name    string
		ceiling int64
		wantErr bool
	}{
		{"exactly at ceiling passes", int64(len(payload)), false},
		{"one byte over fails", int64(len(payload)) - 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			provider := &fakeProvider{video: &fakeVideo{
				meta:     entities.VideoMeta{Title: "clip", Duration: 10},
				streams:  testStreams,
				payload:  payload,
				filename: "clip.mp4",
			}}

			fetcher := NewFetcher(provider, NewPool(1, zerolog.Nop()), tt.ceiling, zerolog.Nop())
			result, err := fetcher.Fetch(context.Background(), "https://youtu.be/dQw4w9WgXcQ", consts.ModeVideo, dir)

			if tt.wantErr {
				var tooLarge *pkgerrors.FileTooLargeError
				require.ErrorAs(t, err, &tooLarge)

				// Neither the oversized file nor its request
				// directory may be left on disk.
				entries, readErr := os.ReadDir(dir)
				require.NoError(t, readErr)
				assert.Empty(t, entries)
				return
			}

			require.NoError(t, err)
			assert.FileExists(t, result.FilePath)
		})
	}
}

func TestFetcher_SanitizesFilename(t *testing.T) {
	dir := t.TempDir()
	provider := &fakeProvider{video: &fakeVideo{
		meta:     entities.VideoMeta{Title: "a:b", Uploader: "up", Duration: 3},
		streams:  testStreams,
		payload:  []byte("x"),
		filename: "a:b?c.mp4",
	}}

	fetcher := NewFetcher(provider, NewPool(1, zerolog.Nop()), 1<<20, zerolog.Nop())
	result, err := fetcher.Fetch(context.Background(), "https://youtu.be/dQw4w9WgXcQ", consts.ModeVideo, dir)
	require.NoError(t, err)

	assert.Equal(t, "a_b_c.mp4", filepath.Base(result.FilePath))
	assert.FileExists(t, result.FilePath)
}

func TestFetcher_SourceUnavailable(t *testing.T) {
	provider := &fakeProvider{err: errors.New("video is private")}

	fetcher := NewFetcher(provider, NewPool(1, zerolog.Nop()), 1<<20, zerolog.Nop())
	_, err := fetcher.Fetch(context.Background(), "https://youtu.be/dQw4w9WgXcQ", consts.ModeAudio, t.TempDir())

	var unavailable *pkgerrors.SourceUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, err.Error(), "video is private")
}

func TestFetcher_DownloadFailed(t *testing.T) {
	dir := t.TempDir()
	provider := &fakeProvider{video: &fakeVideo{
		meta:    entities.VideoMeta{Title: "clip"},
		streams: testStreams,
		dlErr:   errors.New("connection reset"),
	}}

	fetcher := NewFetcher(provider, NewPool(1, zerolog.Nop()), 1<<20, zerolog.Nop())
	_, err := fetcher.Fetch(context.Background(), "https://youtu.be/dQw4w9WgXcQ", consts.ModeAudio, dir)

	var dlFailed *pkgerrors.DownloadFailedError
	require.ErrorAs(t, err, &dlFailed)

	// The empty request directory must not survive the failure.
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
