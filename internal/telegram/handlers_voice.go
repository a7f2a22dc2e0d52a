package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jangaloga/jangaloga-bot/internal/audio"
	"github.com/jangaloga/jangaloga-bot/internal/records"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handleVoice(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	fileID := msg.Voice.FileID

	log.Printf("[voice] start tgID=%d fileID=%s duration=%ds", msg.From.ID, fileID, msg.Voice.Duration)

	if msg.Voice.Duration > app.Cfg.MaxVoiceSeconds {
		app.send(tgbotapi.NewMessage(chatID, MsgVoiceTooLong(msg.Voice.Duration, app.Cfg.MaxVoiceSeconds)))
		return
	}

	if !app.busy.TryLock() {
		app.send(tgbotapi.NewMessage(chatID, MsgBusy))
		return
	}
	defer app.busy.Unlock()

	tmpDir := filepath.Join(app.Cfg.DataDir, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		log.Printf("[voice] mkdir fail: %v", err)
		app.send(tgbotapi.NewMessage(chatID, MsgVoiceProcessFail))
		return
	}

	// скачиваем телеграмный voice (ogg/opus)
	oggIn := filepath.Join(tmpDir, fmt.Sprintf("in_%s.ogg", msg.Voice.FileUniqueID))
	if err := app.downloadVoice(fileID, oggIn); err != nil {
		log.Printf("[voice] download fail tgID=%d err=%v", msg.From.ID, err)
		app.send(tgbotapi.NewMessage(chatID, MsgVoiceDownloadFail))
		return
	}

	// конвертируем в wav для ASR
	wav := filepath.Join(tmpDir, fmt.Sprintf("in_%s.wav", msg.Voice.FileUniqueID))
	defer audio.Cleanup(oggIn, wav)

	if err := audio.Convert(ctx, oggIn, wav, audio.ToWAV16kMono()); err != nil {
		log.Printf("[voice] ffmpeg fail tgID=%d err=%v", msg.From.ID, err)
		app.Notify.Notify(ctx, err, fmt.Sprintf("ffmpeg ogg→wav, chatID=%d", chatID))
		app.send(tgbotapi.NewMessage(chatID, MsgVoiceProcessFail))
		return
	}

	status, _ := app.sendFn(tgbotapi.NewMessage(chatID, MsgListening))

	// ASR (русский)
	ruText, err := app.SpeechService.Transcribe(ctx, wav)
	if err != nil {
		log.Printf("[voice] transcribe fail tgID=%d err=%v", msg.From.ID, err)
		app.Notify.Notify(ctx, err, fmt.Sprintf("ASR, chatID=%d", chatID))
		app.editMessage(chatID, status.MessageID, MsgRecognizeFail)
		return
	}
	log.Printf("[voice] transcribed: %q", ruText)

	if ruText == "" {
		app.editMessage(chatID, status.MessageID, MsgRecognizeFail)
		return
	}
	if n := len([]rune(ruText)); n > app.Cfg.MaxTextChars {
		app.deleteMessage(chatID, status.MessageID)
		app.send(tgbotapi.NewMessage(chatID, MsgTranscriptTooLong(n, app.Cfg.MaxTextChars)))
		return
	}

	app.editMessage(chatID, status.MessageID, MsgTranslating)

	jgText := app.Dict.Translate(ruText)
	if !hasTranslatable(jgText) {
		app.deleteMessage(chatID, status.MessageID)
		app.send(tgbotapi.NewMessage(chatID, MsgNothingTranslatedVoice))
		return
	}

	app.deleteMessage(chatID, status.MessageID)
	app.send(tgbotapi.NewMessage(chatID, jgText))

	voiceURL, durationSec, err := app.speakAndSend(ctx, chatID, jgText)
	if err != nil {
		log.Printf("[voice] tts/send fail tgID=%d err=%v", msg.From.ID, err)
		app.Notify.Notify(ctx, err, fmt.Sprintf("TTS/send (voice), chatID=%d", chatID))
		app.send(tgbotapi.NewMessage(chatID, MsgVoiceSendFail))
	}

	if _, err := app.RecordService.Add(ctx, records.Record{
		ChatID:      chatID,
		TelegramID:  msg.From.ID,
		Source:      "voice",
		RuText:      ruText,
		JgText:      jgText,
		VoiceURL:    voiceURL,
		DurationSec: durationSec,
	}); err != nil {
		log.Printf("[voice] record save fail: %v", err)
	}

	log.Printf("[voice] done tgID=%d", msg.From.ID)
}

func (app *BotApp) downloadVoice(fileID, destPath string) error {
	file, err := app.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return fmt.Errorf("get file: %w", err)
	}

	resp, err := http.Get(file.Link(app.bot.Token))
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	out, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
