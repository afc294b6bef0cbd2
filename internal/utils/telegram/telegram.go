package telegram

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/StounhandJ/tiktok_audio/internal/utils"
)

// Получение ID отправителя сообщения или события
func GetUserID(update telego.Update) int64 {
	if update.Message != nil {
		if update.Message.From != nil && !update.Message.From.IsBot {
			return update.Message.From.ID
		}

		return update.Message.Chat.ID
	}

	if update.CallbackQuery != nil {
		return update.CallbackQuery.From.ID
	}

	if update.InlineQuery != nil {
		return update.InlineQuery.From.ID
	}

	return 0
}

// Получение ID чата
func GetChatID(update telego.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}

	return 0
}

// Получение ID текущего сообщения
func GetCurrentMessageID(update telego.Update) int {
	if update.Message != nil && (update.Message.From == nil || !update.Message.From.IsBot) {
		return update.Message.MessageID
	}

	return 0
}

// Отправка сообщения, в args можно передать telego.ReplyMarkup
func SendMessage(ctx *th.Context, isChat, isSendReplay bool, update telego.Update, text string, args ...any) int {
	sendChatID := GetUserID(update)
	if isChat {
		sendChatID = GetChatID(update)
	}

	params := &telego.SendMessageParams{
		ChatID:    tu.ID(sendChatID),
		Text:      TruncateText(text, 4096),
		ParseMode: telego.ModeHTML,
		LinkPreviewOptions: &telego.LinkPreviewOptions{
			IsDisabled: true,
		},
	}

	if isSendReplay {
		params.ReplyParameters = &telego.ReplyParameters{
			MessageID:                GetCurrentMessageID(update),
			ChatID:                   tu.ID(sendChatID),
			AllowSendingWithoutReply: true,
		}
	}

	for _, v := range args {
		if markup, ok := v.(telego.ReplyMarkup); ok {
			params.ReplyMarkup = markup
		}
	}

	msg, err := ctx.Bot().SendMessage(ctx, params)
	if err != nil {
		utils.Log.Error(err)

		return 0
	}

	return msg.MessageID
}

// TruncateText обрезает по символам, а не байтам
func TruncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}

	return s
}
