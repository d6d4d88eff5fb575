// Package telegram contains Telegram delivery handlers
package telegram

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/deweni2/yt-media-bot/internal/domain/media/consts"
	"github.com/deweni2/yt-media-bot/internal/domain/media/dto"
	"github.com/deweni2/yt-media-bot/internal/domain/media/usecase/buissines"
)

// Constants for Telegram API
const (
	RequestTimeout = 30 * time.Second
	UploadTimeout  = 10 * time.Minute
)

// Handlers contains Telegram command and callback handlers
// Implements deps.MediaSender interface
type Handlers struct {
	uc     *buissines.UseCase
	bot    *tgbot.Bot
	logger zerolog.Logger
}

// NewHandlers creates new Telegram handlers
func NewHandlers(uc *buissines.UseCase, bot *tgbot.Bot, logger zerolog.Logger) *Handlers {
	return &Handlers{
		uc:     uc,
		bot:    bot,
		logger: logger,
	}
}

// HandleStart handles /start command
func (h *Handlers) HandleStart(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	h.logCommand(userID, "/start", "processing")

	resp, err := h.uc.HandleStart(ctx, userID, update.Message.From.Username)
	if err != nil {
		h.logError(userID, "/start", err)
		return
	}

	h.sendResponse(ctx, chatID, resp.Message)
	h.logCommand(userID, "/start", "success")
}

// HandleHelp handles /help command
func (h *Handlers) HandleHelp(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	h.logCommand(userID, "/help", "processing")

	resp, err := h.uc.HandleHelp(ctx, userID)
	if err != nil {
		h.logError(userID, "/help", err)
		return
	}

	h.sendResponse(ctx, chatID, resp.Message)
	h.logCommand(userID, "/help", "success")
}

// HandleText inspects free text for a supported link and offers the
// Audio/Video choice keyboard
func (h *Handlers) HandleText(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	chatID := update.Message.Chat.ID

	resp := h.uc.HandleLink(ctx, &dto.IncomingLinkRequest{
		ChatID:    chatID,
		MessageID: update.Message.ID,
		Text:      strings.TrimSpace(update.Message.Text),
	})

	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	params := &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   resp.Message,
		ReplyParameters: &models.ReplyParameters{
			MessageID: update.Message.ID,
		},
	}
	if resp.OfferChoice {
		params.ReplyMarkup = ChoiceMarkup(resp.MessageID)
	}

	if _, err := h.bot.SendMessage(msgCtx, params); err != nil {
		h.logger.Error().Int64("chat_id", chatID).Err(err).Msg("Failed to send link response")
	}
}

// HandleDownloadCallback handles Audio/Video button presses. The blocking
// download runs off the dispatch path; the bounded pool limits parallelism.
func (h *Handlers) HandleDownloadCallback(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	cq := update.CallbackQuery
	if cq == nil {
		return
	}

	req, err := h.parseCallback(cq)
	if err != nil {
		h.logger.Warn().Str("data", cq.Data).Err(err).Msg("Unparsable callback data")
		return
	}

	go h.uc.HandleDownload(ctx, req)
}

// parseCallback decodes "yt|<mode>|<original_message_id>" plus the chat and
// reply-chain context carried by the callback's message
func (h *Handlers) parseCallback(cq *models.CallbackQuery) (*dto.DownloadCallbackRequest, error) {
	parts := strings.Split(cq.Data, consts.CallbackSeparator)
	if len(parts) != 3 || parts[0] != consts.CallbackPrefix {
		return nil, fmt.Errorf("unexpected callback data %q", cq.Data)
	}

	mode := consts.Mode(parts[1])
	if !mode.Valid() {
		return nil, fmt.Errorf("unexpected mode %q", parts[1])
	}

	origID, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, fmt.Errorf("unexpected message id %q: %w", parts[2], err)
	}

	msg := cq.Message.Message
	if msg == nil {
		return nil, fmt.Errorf("callback carries no accessible message")
	}

	var replyText string
	if msg.ReplyToMessage != nil {
		replyText = strings.TrimSpace(msg.ReplyToMessage.Text)
	}

	return &dto.DownloadCallbackRequest{
		CallbackID:        cq.ID,
		ChatID:            msg.Chat.ID,
		Mode:              mode,
		OriginalMessageID: origID,
		ReplyText:         replyText,
		RequesterID:       cq.From.ID,
		FirstName:         cq.From.FirstName,
	}, nil
}

// SendMessage implements deps.MediaSender interface
func (h *Handlers) SendMessage(ctx context.Context, chatID int64, text string) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.SendMessage(msgCtx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error().Int64("chat_id", chatID).Err(err).Msg("Failed to send message")
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// SendMessageAndGetID sends a text message and returns its telegram message ID
func (h *Handlers) SendMessageAndGetID(ctx context.Context, chatID int64, text string) (int, error) {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	msg, err := h.bot.SendMessage(msgCtx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error().Int64("chat_id", chatID).Err(err).Msg("Failed to send message")
		return 0, fmt.Errorf("failed to send message: %w", err)
	}

	return msg.ID, nil
}

// DeleteMessage deletes a message from a chat
func (h *Handlers) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.DeleteMessage(msgCtx, &tgbot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: messageID,
	})
	if err != nil {
		h.logger.Debug().Int64("chat_id", chatID).Int("message_id", messageID).Err(err).Msg("Failed to delete message")
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}

// SendAudio uploads a local audio file with a MarkdownV2 caption and the
// developer button
func (h *Handlers) SendAudio(ctx context.Context, chatID int64, path, caption string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	msgCtx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	_, err = h.bot.SendAudio(msgCtx, &tgbot.SendAudioParams{
		ChatID:      chatID,
		Audio:       &models.InputFileUpload{Filename: filepath.Base(path), Data: file},
		Caption:     caption,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: DeveloperMarkup(),
	})
	if err != nil {
		h.logger.Error().Int64("chat_id", chatID).Str("path", path).Err(err).Msg("Failed to send audio")
		return err
	}

	h.logger.Info().Int64("chat_id", chatID).Str("path", path).Msg("Audio sent")
	return nil
}

// SendVideo uploads a local video file with a MarkdownV2 caption and the
// developer button
func (h *Handlers) SendVideo(ctx context.Context, chatID int64, path, caption string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open video file: %w", err)
	}
	defer file.Close()

	msgCtx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	_, err = h.bot.SendVideo(msgCtx, &tgbot.SendVideoParams{
		ChatID:            chatID,
		Video:             &models.InputFileUpload{Filename: filepath.Base(path), Data: file},
		Caption:           caption,
		ParseMode:         models.ParseModeMarkdown,
		SupportsStreaming: true,
		ReplyMarkup:       DeveloperMarkup(),
	})
	if err != nil {
		h.logger.Error().Int64("chat_id", chatID).Str("path", path).Err(err).Msg("Failed to send video")
		return err
	}

	h.logger.Info().Int64("chat_id", chatID).Str("path", path).Msg("Video sent")
	return nil
}

// AnswerCallback acknowledges a callback query, optionally as an alert
func (h *Handlers) AnswerCallback(ctx context.Context, callbackID, text string, showAlert bool) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.AnswerCallbackQuery(msgCtx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       showAlert,
	})
	if err != nil {
		h.logger.Debug().Str("callback_id", callbackID).Err(err).Msg("Failed to answer callback query")
		return err
	}

	return nil
}

func (h *Handlers) sendResponse(ctx context.Context, chatID int64, text string) {
	if err := h.SendMessage(ctx, chatID, text); err != nil {
		h.logger.Error().Int64("chat_id", chatID).Err(err).Msg("Failed to send Telegram response")
	}
}

// logCommand logs processed commands
func (h *Handlers) logCommand(userID int64, command, result string) {
	h.logger.Info().Int64("user_id", userID).Str("command", command).Str("result", result).Msg("Telegram command processed")
}

// logError logs command errors
func (h *Handlers) logError(userID int64, command string, err error) {
	h.logger.Error().Int64("user_id", userID).Str("command", command).Err(err).Msg("Telegram command failed")
}
