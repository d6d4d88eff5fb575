// Package buissines contains business logic for the media domain
package buissines

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/deweni2/yt-media-bot/internal/domain/media/caption"
	"github.com/deweni2/yt-media-bot/internal/domain/media/consts"
	"github.com/deweni2/yt-media-bot/internal/domain/media/deps"
	"github.com/deweni2/yt-media-bot/internal/domain/media/detect"
	"github.com/deweni2/yt-media-bot/internal/domain/media/dto"
	"github.com/deweni2/yt-media-bot/internal/domain/media/entities"
	mediaerrors "github.com/deweni2/yt-media-bot/internal/domain/media/errors"
	"github.com/deweni2/yt-media-bot/internal/domain/media/workers"
)

// Fetcher is the download worker contract the orchestrator drives
type Fetcher interface {
	Fetch(ctx context.Context, url string, mode consts.Mode, dir string) (*entities.DownloadResult, error)
}

// UseCase orchestrates the detect -> choose -> download -> upload -> cleanup
// flow for each request
type UseCase struct {
	fetcher      Fetcher
	links        deps.LinkCache
	sender       deps.MediaSender
	downloadsDir string
	logger       zerolog.Logger
}

var _ Fetcher = (*workers.Fetcher)(nil)

// NewUseCase creates a new UseCase instance
// Note: sender is not passed here to break cyclic dependency
// Use SetSender after creating the Telegram handlers
func NewUseCase(fetcher Fetcher, links deps.LinkCache, downloadsDir string, logger zerolog.Logger) *UseCase {
	return &UseCase{
		fetcher:      fetcher,
		links:        links,
		downloadsDir: downloadsDir,
		logger:       logger.With().Str("component", "media-usecase").Logger(),
	}
}

// SetSender sets the MediaSender after construction
// This is called by fx.Invoke to resolve cyclic dependency
func (uc *UseCase) SetSender(sender deps.MediaSender) {
	uc.sender = sender
}

// usageMessage is the shared /start and /help reply
const usageMessage = "Send a YouTube link and choose Audio or Video.\n" +
	"I will download and upload the file with metadata.\n" +
	"Developer: @deweni2"

// HandleStart handles /start command
func (uc *UseCase) HandleStart(ctx context.Context, userID int64, username string) (*dto.CommandResponse, error) {
	uc.logger.Info().
		Int64("user_id", userID).
		Str("username", username).
		Msg("User started bot")

	return &dto.CommandResponse{Message: usageMessage}, nil
}

// HandleHelp handles /help command
func (uc *UseCase) HandleHelp(ctx context.Context, userID int64) (*dto.CommandResponse, error) {
	uc.logger.Info().
		Int64("user_id", userID).
		Msg("Help requested")

	return &dto.CommandResponse{Message: usageMessage}, nil
}

// HandleLink classifies free text and tells the delivery layer whether to
// offer the Audio/Video choice for the originating message
func (uc *UseCase) HandleLink(ctx context.Context, req *dto.IncomingLinkRequest) *dto.LinkResponse {
	platform := detect.Detect(req.Text)
	if platform != consts.PlatformYouTube {
		return &dto.LinkResponse{
			Platform: platform,
			Message:  "No supported YouTube link detected. Send a YouTube URL.",
		}
	}

	uc.links.Remember(req.MessageID, req.Text)

	uc.logger.Info().
		Int64("chat_id", req.ChatID).
		Int("message_id", req.MessageID).
		Msg("YouTube link detected")

	return &dto.LinkResponse{
		Platform:    platform,
		Message:     "Choose download type:",
		OfferChoice: true,
		MessageID:   req.MessageID,
	}
}

// HandleDownload drives one request through the state machine. Every failure
// is reported to the user as text; nothing escapes to crash the process.
func (uc *UseCase) HandleDownload(ctx context.Context, req *dto.DownloadCallbackRequest) {
	request := entities.NewRequest(entities.DownloadRequest{
		Mode:              req.Mode,
		Requester:         entities.Requester{ID: req.RequesterID, FirstName: req.FirstName},
		OriginalMessageID: req.OriginalMessageID,
	})

	url, err := uc.recoverURL(req)
	if err != nil {
		_ = request.Transition(entities.StateFailed)
		uc.logger.Warn().
			Int("message_id", req.OriginalMessageID).
			Msg("Original link not recoverable")
		uc.answer(ctx, req.CallbackID, err.Error(), true)
		return
	}
	request.URL = url

	uc.answer(ctx, req.CallbackID, fmt.Sprintf("Preparing %s download...", req.Mode), false)

	processingID, err := uc.sender.SendMessageAndGetID(ctx, req.ChatID, "⏳ Processing... Please wait.")
	if err != nil {
		uc.logger.Error().Int64("chat_id", req.ChatID).Err(err).Msg("Failed to send processing message")
		processingID = 0
	}

	start := time.Now()

	if err := request.Transition(entities.StateDownloading); err != nil {
		uc.fail(ctx, request, req.ChatID, processingID, err)
		return
	}

	result, err := uc.fetcher.Fetch(ctx, request.URL, request.Mode, uc.downloadsDir)
	if err != nil {
		uc.fail(ctx, request, req.ChatID, processingID, err)
		return
	}

	if err := request.Transition(entities.StateUploading); err != nil {
		uc.fail(ctx, request, req.ChatID, processingID, err)
		return
	}

	text := caption.Build(result, request.Requester)

	var sendErr error
	switch request.Mode {
	case consts.ModeAudio:
		sendErr = uc.sender.SendAudio(ctx, req.ChatID, result.FilePath, text)
	default:
		sendErr = uc.sender.SendVideo(ctx, req.ChatID, result.FilePath, text)
	}
	if sendErr != nil {
		uc.removeRequestDir(result.FilePath)
		uc.fail(ctx, request, req.ChatID, processingID, mediaerrors.DeliveryFailed(sendErr))
		return
	}

	_ = request.Transition(entities.StateDone)

	// Terminal cleanup is best effort; its own failures are swallowed.
	uc.deleteMessage(ctx, req.ChatID, processingID)
	uc.removeRequestDir(result.FilePath)

	elapsed := int(time.Since(start).Seconds())
	if err := uc.sender.SendMessage(ctx, req.ChatID, fmt.Sprintf("✅ Uploaded in %ds.", elapsed)); err != nil {
		uc.logger.Warn().Int64("chat_id", req.ChatID).Err(err).Msg("Failed to send confirmation")
	}

	uc.logger.Info().
		Int64("chat_id", req.ChatID).
		Str("mode", string(request.Mode)).
		Int("elapsed_s", elapsed).
		Msg("Request completed")
}

// recoverURL restores the original URL from the link cache, falling back to
// the reply-chain text attached to the callback
func (uc *UseCase) recoverURL(req *dto.DownloadCallbackRequest) (string, error) {
	if url, ok := uc.links.Lookup(req.OriginalMessageID); ok {
		return url, nil
	}

	if req.ReplyText != "" && detect.Detect(req.ReplyText) == consts.PlatformYouTube {
		return req.ReplyText, nil
	}

	return "", mediaerrors.ErrLinkNotFound
}

// fail reports the terminal error to the user and cleans up the status message
func (uc *UseCase) fail(ctx context.Context, request *entities.Request, chatID int64, processingID int, cause error) {
	_ = request.Transition(entities.StateFailed)

	uc.logger.Warn().
		Int64("chat_id", chatID).
		Str("mode", string(request.Mode)).
		Err(cause).
		Msg("Request failed")

	uc.deleteMessage(ctx, chatID, processingID)

	if err := uc.sender.SendMessage(ctx, chatID, cause.Error()); err != nil {
		uc.logger.Error().Int64("chat_id", chatID).Err(err).Msg("Failed to report error to user")
	}
}

func (uc *UseCase) deleteMessage(ctx context.Context, chatID int64, messageID int) {
	if messageID == 0 {
		return
	}
	if err := uc.sender.DeleteMessage(ctx, chatID, messageID); err != nil {
		uc.logger.Debug().Int64("chat_id", chatID).Int("message_id", messageID).Err(err).Msg("Failed to delete processing message")
	}
}

// removeRequestDir drops the per-request directory the file was downloaded
// into, so no uuid directories outlive their request.
func (uc *UseCase) removeRequestDir(path string) {
	if err := os.RemoveAll(filepath.Dir(path)); err != nil {
		uc.logger.Debug().Str("path", path).Err(err).Msg("Failed to remove request directory")
	}
}

func (uc *UseCase) answer(ctx context.Context, callbackID, text string, alert bool) {
	if err := uc.sender.AnswerCallback(ctx, callbackID, text, alert); err != nil {
		uc.logger.Debug().Str("callback_id", callbackID).Err(err).Msg("Failed to answer callback")
	}
}
