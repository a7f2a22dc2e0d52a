package notify

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Infra struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
}

// NewInfra: adminChatID == 0 выключает уведомления.
// Бот передаётся ПОСЛЕ инициализации через SetBot.
func NewInfra(adminChatID int64) *Infra {
	return &Infra{adminChatID: adminChatID}
}

func (i *Infra) SetBot(bot *tgbotapi.BotAPI) {
	i.bot = bot
}

func (i *Infra) Notify(ctx context.Context, err error, details string) {
	if i.bot == nil || i.adminChatID == 0 {
		return
	}

	text := fmt.Sprintf(
		"❗ Ошибка в боте\n\nОшибка: %v\n\nДетали: %s",
		err,
		details,
	)

	msg := tgbotapi.NewMessage(i.adminChatID, text)

	if _, sendErr := i.bot.Send(msg); sendErr != nil {
		log.Printf("[notify] send fail: %v", sendErr)
	}
}
