package handlers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/StounhandJ/tiktok_audio/internal/resolvers"
	"github.com/StounhandJ/tiktok_audio/internal/utils"
	telegramUtils "github.com/StounhandJ/tiktok_audio/internal/utils/telegram"
)

const startText = "Пришли в inline режиме ссылку на ролик TikTok, бот вернёт его звук.\n" +
	"Пример: <code>@bot https://vm.tiktok.com/XXXXXXX/</code>"

// Стартовое сообщение
func (h handler) StartCommand(ctx *th.Context, update telego.Update) error {
	telegramUtils.SendMessage(ctx, false, false, update, startText)

	return nil
}

func (h handler) InlineAudio(ctx *th.Context, query telego.InlineQuery) error {
	link := strings.TrimSpace(query.Query)

	// Проверка валидности url
	if !isAllowedShortURL(link) || !h.resolver.Valid(link) {
		return answerEmpty(ctx, query.ID)
	}

	// Получение данных о ролике
	meta, err := h.resolver.Resolve(ctx, link)
	if err != nil {
		utils.Log.WithField("url", link).Warnf("Не удалось получить метаданные: %v", err)

		return answerEmpty(ctx, query.ID)
	}

	result := h.audioResult(meta, link)
	if result == nil {
		return answerEmpty(ctx, query.ID)
	}

	h.countResolved()

	return ctx.Bot().AnswerInlineQuery(ctx, &telego.AnswerInlineQueryParams{
		InlineQueryID: query.ID,
		Results:       []telego.InlineQueryResult{result},
		// ссылки на звук подписаны и быстро протухают
		CacheTime: 60,
	})
}

// audioResult собирает ответ из метаданных, без ссылки на звук ответа нет
func (h handler) audioResult(meta *resolvers.VideoMetadata, link string) *telego.InlineQueryResultAudio {
	if meta == nil || deref(meta.AudioPlayURL) == "" {
		return nil
	}

	title := utils.StringNotEmptyCoalesce(deref(meta.AudioTitle), deref(meta.Title), "TikTok audio")
	id := utils.StringNotEmptyCoalesce(deref(meta.VideoID), *meta.AudioPlayURL)

	return &telego.InlineQueryResultAudio{
		Type:        telego.ResultTypeAudio,
		ID:          id[:min(64, len(id))],
		AudioURL:    h.downloadURL(*meta.AudioPlayURL, title),
		Title:       telegramUtils.TruncateText(title, 200),
		Performer:   utils.StringNotEmptyCoalesce(deref(meta.AudioAuthor), deref(meta.AuthorDisplayName)),
		Caption:     telegramUtils.TruncateText(deref(meta.Description), 1024),
		ReplyMarkup: tu.InlineKeyboard(tu.InlineKeyboardRow(tu.InlineKeyboardButton("Оригинал").WithURL(link))),
	}
}

// downloadURL ведёт на /api/download_mp3 этого сервиса, без PublicURL - прямо на CDN
func (h handler) downloadURL(audioURL, title string) string {
	if h.publicURL == "" {
		return audioURL
	}

	q := url.Values{}
	q.Set("url", audioURL)
	q.Set("filename", utils.SanitizeFileName(title)+".mp3")

	return fmt.Sprintf("%s/api/download_mp3?%s", strings.TrimRight(h.publicURL, "/"), q.Encode())
}

func answerEmpty(ctx *th.Context, queryID string) error {
	return ctx.Bot().AnswerInlineQuery(ctx, &telego.AnswerInlineQueryParams{
		InlineQueryID: queryID,
		Results:       []telego.InlineQueryResult{},
		CacheTime:     0,
	})
}

// isAllowedShortURL максимально быстрая проверка валидности url
func isAllowedShortURL(s string) bool {
	// Минимальная длина: https://vt.tiktok.com/X
	if len(s) < 22 {
		return false
	}

	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
