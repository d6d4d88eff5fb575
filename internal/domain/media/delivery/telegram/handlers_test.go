package telegram

import (
	"regexp"
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deweni2/yt-media-bot/internal/domain/media/consts"
)

func callbackQuery(data, replyText string) *models.CallbackQuery {
	msg := &models.Message{
		ID:   50,
		Chat: models.Chat{ID: 7},
	}
	if replyText != "" {
		msg.ReplyToMessage = &models.Message{Text: replyText}
	}

	return &models.CallbackQuery{
		ID:      "cb1",
		From:    models.User{ID: 42, FirstName: "Ada"},
		Data:    data,
		Message: models.MaybeInaccessibleMessage{Message: msg},
	}
}

func TestParseCallback_Valid(t *testing.T) {
	h := &Handlers{}

	req, err := h.parseCallback(callbackQuery("yt|audio|10", "https://youtu.be/dQw4w9WgXcQ"))
	require.NoError(t, err)

	assert.Equal(t, "cb1", req.CallbackID)
	assert.Equal(t, int64(7), req.ChatID)
	assert.Equal(t, consts.ModeAudio, req.Mode)
	assert.Equal(t, 10, req.OriginalMessageID)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", req.ReplyText)
	assert.Equal(t, int64(42), req.RequesterID)
	assert.Equal(t, "Ada", req.FirstName)
}

func TestParseCallback_Invalid(t *testing.T) {
	h := &Handlers{}

	tests := []string{
		"yt|audio",
		"yt|flac|10",
		"yt|audio|abc",
		"other|audio|10",
	}

	for _, data := range tests {
		t.Run(data, func(t *testing.T) {
			_, err := h.parseCallback(callbackQuery(data, ""))
			assert.Error(t, err)
		})
	}
}

func TestChoiceMarkup_CallbackDataMatchesPattern(t *testing.T) {
	re := regexp.MustCompile(consts.CallbackPattern)

	markup := ChoiceMarkup(123)
	require.Len(t, markup.InlineKeyboard, 2)

	choiceRow := markup.InlineKeyboard[0]
	require.Len(t, choiceRow, 2)
	assert.Equal(t, "yt|audio|123", choiceRow[0].CallbackData)
	assert.Equal(t, "yt|video|123", choiceRow[1].CallbackData)
	for _, btn := range choiceRow {
		assert.Regexp(t, re, btn.CallbackData)
	}

	devRow := markup.InlineKeyboard[1]
	require.Len(t, devRow, 1)
	assert.Equal(t, consts.DeveloperLabel, devRow[0].Text)
	assert.Equal(t, consts.DeveloperURL, devRow[0].URL)
}

func TestDeveloperMarkup(t *testing.T) {
	markup := DeveloperMarkup()
	require.Len(t, markup.InlineKeyboard, 1)
	require.Len(t, markup.InlineKeyboard[0], 1)
	assert.Equal(t, consts.DeveloperURL, markup.InlineKeyboard[0][0].URL)
}
