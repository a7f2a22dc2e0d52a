package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jangaloga/jangaloga-bot/internal/records"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handleText(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	ruText := strings.TrimSpace(msg.Text)

	log.Printf("[text] start tgID=%d chars=%d", msg.From.ID, len([]rune(ruText)))

	if n := len([]rune(ruText)); n > app.Cfg.MaxTextChars {
		app.send(tgbotapi.NewMessage(chatID, MsgTextTooLong(n, app.Cfg.MaxTextChars)))
		return
	}

	jgText := app.Dict.Translate(ruText)
	if !hasTranslatable(jgText) {
		app.send(tgbotapi.NewMessage(chatID, MsgNothingTranslatedText))
		return
	}

	// перевод дешёвый, а вот синтез — нет: если пайплайн занят,
	// отдаём хотя бы текст
	if !app.busy.TryLock() {
		app.send(tgbotapi.NewMessage(chatID, MsgBusyWithTranslation(jgText)))
		return
	}
	defer app.busy.Unlock()

	app.send(tgbotapi.NewMessage(chatID, jgText))

	voiceURL, durationSec, err := app.speakAndSend(ctx, chatID, jgText)
	if err != nil {
		log.Printf("[text] tts/send fail tgID=%d err=%v", msg.From.ID, err)
		app.Notify.Notify(ctx, err, fmt.Sprintf("TTS/send (text), chatID=%d", chatID))
		app.send(tgbotapi.NewMessage(chatID, MsgVoiceSendFail))
	}

	if _, err := app.RecordService.Add(ctx, records.Record{
		ChatID:      chatID,
		TelegramID:  msg.From.ID,
		Source:      "text",
		RuText:      ruText,
		JgText:      jgText,
		VoiceURL:    voiceURL,
		DurationSec: durationSec,
	}); err != nil {
		log.Printf("[text] record save fail: %v", err)
	}

	log.Printf("[text] done tgID=%d", msg.From.ID)
}
