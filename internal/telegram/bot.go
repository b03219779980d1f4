// Package telegram delivers the daily summary to a chat via the Bot
// API. Messages are sent as plain text; the summary carries its own
// emoji and URLs and must not be reinterpreted as markup.
package telegram

import (
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// partPause spaces consecutive parts out a little; bursts of messages
// trip the Bot API flood control.
const partPause = 1 * time.Second

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &Bot{api: api, chatID: chatID}, nil
}

// Send delivers the parts in order, stopping at the first failure.
func (b *Bot) Send(parts []string) error {
	for i, part := range parts {
		if i > 0 {
			time.Sleep(partPause)
		}
		msg := tgbotapi.NewMessage(b.chatID, part)
		if _, err := b.api.Send(msg); err != nil {
			return fmt.Errorf("telegram part %d/%d: %w", i+1, len(parts), err)
		}
		log.Printf("✅ Telegram part %d/%d sent", i+1, len(parts))
	}
	return nil
}

// Disabled replaces Bot when credentials are missing or rejected: the
// run completes normally, it just keeps the summary to itself.
type Disabled struct{}

func (Disabled) Send(parts []string) error {
	log.Printf("⚠️ Telegram not configured (TELEGRAM_TOKEN / TELEGRAM_CHAT_ID), skipping %d part(s)", len(parts))
	return nil
}
