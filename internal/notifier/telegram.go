// Package notifier announces detected crossings to a Telegram group so the
// whole challenge sees the banter, not just the two users involved.
package notifier

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	log.Printf("[Notifier] Telegram announcer authorized on account %s", bot.Self.UserName)
	return &Telegram{bot: bot, chatID: chatID}, nil
}

// AnnounceCrossing posts the crossing to the group chat. Send failures are
// logged and swallowed; announcements are best-effort.
func (t *Telegram) AnnounceCrossing(category, overtakerName, overtakenName string) {
	text := fmt.Sprintf("🏆 %s vient de dépasser %s en %s !", overtakerName, overtakenName, category)
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("[Notifier] Error sending Telegram message: %v", err)
	}
}
