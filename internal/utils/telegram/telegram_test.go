package telegram

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"
)

func TestTruncateText(t *testing.T) {
	require.Equal(t, "При", TruncateText("Привет", 3))
	require.Equal(t, "abc", TruncateText("abc", 10))
}

func TestGetUserID(t *testing.T) {
	require.Equal(t, int64(7), GetUserID(telego.Update{Message: &telego.Message{
		From: &telego.User{ID: 7},
		Chat: telego.Chat{ID: 100},
	}}))

	require.Equal(t, int64(100), GetUserID(telego.Update{Message: &telego.Message{
		From: &telego.User{ID: 7, IsBot: true},
		Chat: telego.Chat{ID: 100},
	}}))

	require.Equal(t, int64(9), GetUserID(telego.Update{InlineQuery: &telego.InlineQuery{From: telego.User{ID: 9}}}))
	require.Zero(t, GetUserID(telego.Update{}))
}

func TestGetChatAndMessageID(t *testing.T) {
	update := telego.Update{Message: &telego.Message{MessageID: 5, Chat: telego.Chat{ID: 100}}}

	require.Equal(t, int64(100), GetChatID(update))
	require.Equal(t, 5, GetCurrentMessageID(update))
	require.Zero(t, GetChatID(telego.Update{}))
}
