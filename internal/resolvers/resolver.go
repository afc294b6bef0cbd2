//go:generate easyjson resolver.go
package resolvers

import (
	"context"
	"strings"
)

type IResolver interface {
	Resolve(ctx context.Context, url string) (*VideoMetadata, error)
	Valid(url string) bool
	Source() Source
}

type Source string

const (
	SourcePageScrape Source = "page-scrape"
	SourceOEmbed     Source = "oembed"
	SourceTikwm      Source = "tikwm"
)

func ParseSource(s string) (Source, bool) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourcePageScrape:
		return SourcePageScrape, true
	case SourceOEmbed:
		return SourceOEmbed, true
	case SourceTikwm:
		return SourceTikwm, true
	default:
		return "", false
	}
}

// easyjson:json
// VideoMetadata - результат одного разрешения ссылки. Все поля необязательны:
// отсутствие поля не ошибка, ошибка только когда не найдено ничего.
// Description и Title несут один и тот же текст (описание ролика у TikTok и есть заголовок).
type VideoMetadata struct {
	VideoID           *string `json:"video_id"`
	Description       *string `json:"description"`
	Title             *string `json:"title"`
	AuthorUniqueID    *string `json:"author_unique_id"`
	AuthorDisplayName *string `json:"author_display_name"`
	AuthorProfileURL  *string `json:"author_profile_url"`
	CoverImageURL     *string `json:"cover_image_url"`
	AudioTitle        *string `json:"audio_title"`
	AudioAuthor       *string `json:"audio_author"`
	AudioPlayURL      *string `json:"audio_play_url"`
	ProviderName      *string `json:"provider_name"`
	Source            Source  `json:"source"`
}

func (m *VideoMetadata) SetText(text *string) {
	m.Description = text
	m.Title = text
}

// IsTikTokURL максимально быстрая проверка, что ссылка ведёт на TikTok
func IsTikTokURL(url string) bool {
	return strings.Contains(strings.ToLower(url), "tiktok.com")
}

// ProfileURL строит ссылку на профиль по uniqueId
func ProfileURL(uniqueID *string) *string {
	if uniqueID == nil || *uniqueID == "" {
		return nil
	}

	u := "https://www.tiktok.com/@" + *uniqueID

	return &u
}
