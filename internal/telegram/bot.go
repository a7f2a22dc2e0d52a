package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// runBotLoop — главный цикл получения апдейтов
func (app *BotApp) runBotLoop() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := app.bot.GetUpdatesChan(u)
	log.Printf("[bot_loop] started username=@%s", app.bot.Self.UserName)

	for update := range updates {
		if update.Message == nil || update.Message.From == nil {
			continue
		}

		msg := update.Message
		log.Printf(
			"[bot_touch] fromTG=%d chatID=%d updateID=%d",
			msg.From.ID,
			msg.Chat.ID,
			update.UpdateID,
		)

		go app.dispatchMessage(context.Background(), msg)
	}
}

func (app *BotApp) dispatchMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch {
	case msg.IsCommand():
		app.handleCommand(ctx, msg)
	case msg.Voice != nil:
		app.handleVoice(ctx, msg)
	case msg.Text != "":
		app.handleText(ctx, msg)
	default:
		app.send(tgbotapi.NewMessage(chatID, MsgSendVoiceOrText))
	}
}

func (app *BotApp) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start", "help":
		app.send(tgbotapi.NewMessage(msg.Chat.ID, MsgGreeting))
	}
}

func (app *BotApp) send(c tgbotapi.Chattable) {
	if _, err := app.sendFn(c); err != nil {
		log.Printf("[send] fail: %v", err)
	}
}
