package telegram

import (
	"fmt"

	"github.com/go-telegram/bot/models"

	"github.com/deweni2/yt-media-bot/internal/domain/media/consts"
)

// DeveloperMarkup builds the fixed developer-credit button attached to uploads
func DeveloperMarkup() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: consts.DeveloperLabel, URL: consts.DeveloperURL},
			},
		},
	}
}

// ChoiceMarkup builds the Audio/Video keyboard bound to the originating
// message ID via callback data "yt|<mode>|<message-id>"
func ChoiceMarkup(messageID int) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "📥 Audio", CallbackData: callbackData(consts.ModeAudio, messageID)},
				{Text: "🎬 Video", CallbackData: callbackData(consts.ModeVideo, messageID)},
			},
			{
				{Text: consts.DeveloperLabel, URL: consts.DeveloperURL},
			},
		},
	}
}

func callbackData(mode consts.Mode, messageID int) string {
	return fmt.Sprintf("%s%s%s%s%d",
		consts.CallbackPrefix, consts.CallbackSeparator,
		mode, consts.CallbackSeparator,
		messageID)
}
