package telegram

import (
	"regexp"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/deweni2/yt-media-bot/internal/domain/media/consts"
)

// Router registers Telegram bot handlers
type Router struct {
	handlers *Handlers
	logger   zerolog.Logger
}

// NewRouter creates new Telegram router
func NewRouter(handlers *Handlers, logger zerolog.Logger) *Router {
	return &Router{
		handlers: handlers,
		logger:   logger,
	}
}

// RegisterRoutes registers all command, text and callback handlers on the bot
func (r *Router) RegisterRoutes(bot *tgbot.Bot) {
	// Command handlers
	bot.RegisterHandler(tgbot.HandlerTypeMessageText, "/"+consts.CommandStart.Name, tgbot.MatchTypeExact, r.handlers.HandleStart)
	bot.RegisterHandler(tgbot.HandlerTypeMessageText, "/"+consts.CommandHelp.Name, tgbot.MatchTypeExact, r.handlers.HandleHelp)

	// Audio/Video button presses
	bot.RegisterHandlerRegexp(
		tgbot.HandlerTypeCallbackQueryData,
		regexp.MustCompile(consts.CallbackPattern),
		r.handlers.HandleDownloadCallback,
	)

	// Any non-command text goes through link detection
	bot.RegisterHandlerMatchFunc(matchPlainText, r.handlers.HandleText)

	r.logger.Info().Msg("All Telegram handlers registered successfully")
}

// matchPlainText matches messages with non-command text
func matchPlainText(update *models.Update) bool {
	return update.Message != nil &&
		update.Message.Text != "" &&
		!strings.HasPrefix(update.Message.Text, "/")
}
