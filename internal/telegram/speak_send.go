package telegram

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/jangaloga/jangaloga-bot/internal/audio"
	"github.com/jangaloga/jangaloga-bot/internal/dictionary"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

// speakAndSend синтезирует jgText в клонированном голосе и отправляет
// voice note. Возвращает URL архива (если S3 настроен) и длительность.
func (app *BotApp) speakAndSend(ctx context.Context, chatID int64, jgText string) (*string, float64, error) {
	tmpDir := filepath.Join(app.Cfg.DataDir, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return nil, 0, err
	}

	outWAV := audio.TempFile(tmpDir, ".wav")
	var slowedWAV, outOGG string
	defer func() {
		audio.Cleanup(outWAV, slowedWAV, outOGG)
	}()

	status, _ := app.sendFn(tgbotapi.NewMessage(chatID, MsgSynthesizing))

	log.Printf("[speak] tts start chars=%d", len([]rune(jgText)))
	if err := app.SpeechService.Synthesize(ctx, jgText, outWAV); err != nil {
		app.deleteMessage(chatID, status.MessageID)
		return nil, 0, fmt.Errorf("synthesize: %w", err)
	}
	log.Printf("[speak] tts done: %s", outWAV)

	// замедляем для разборчивости (без смены высоты тона)
	wavForOGG := outWAV
	if math.Abs(app.Cfg.SpeechTempo-1.0) > 1e-6 {
		slowedWAV = audio.TempFile(tmpDir, ".wav")
		log.Printf("[speak] applying tempo=%g", app.Cfg.SpeechTempo)
		if err := audio.Convert(ctx, outWAV, slowedWAV, audio.Atempo(app.Cfg.SpeechTempo)); err != nil {
			app.deleteMessage(chatID, status.MessageID)
			return nil, 0, fmt.Errorf("tempo filter: %w", err)
		}
		wavForOGG = slowedWAV
	}

	outOGG = audio.TempFile(tmpDir, ".ogg")
	if err := audio.Convert(ctx, wavForOGG, outOGG, audio.ToVoiceOGG()); err != nil {
		app.deleteMessage(chatID, status.MessageID)
		return nil, 0, fmt.Errorf("opus encode: %w", err)
	}

	if fi, err := os.Stat(outOGG); err == nil {
		log.Printf("[speak] ogg ready: %s bytes=%d", outOGG, fi.Size())
	}

	app.deleteMessage(chatID, status.MessageID)

	if err := app.sendVoiceWithRetry(chatID, outOGG); err != nil {
		return nil, 0, err
	}

	durationSec, err := audio.Duration(outOGG)
	if err != nil {
		log.Printf("[speak] ffprobe fail (non-fatal): %v", err)
	}

	var voiceURL *string
	if app.S3 != nil {
		key := fmt.Sprintf("voices/%s.ogg", uuid.NewString())
		url, err := app.S3.PutFile(ctx, key, outOGG, "audio/ogg")
		if err != nil {
			log.Printf("[speak] s3 archive fail (non-fatal): %v", err)
		} else {
			voiceURL = &url
		}
	}

	return voiceURL, durationSec, nil
}

// sendVoiceWithRetry: телеграм периодически рвёт загрузку больших voice,
// поэтому 3 попытки, потом fallback на обычный sendAudio.
func (app *BotApp) sendVoiceWithRetry(chatID int64, oggPath string) error {
	var lastErr error

	for attempt := 0; attempt < 3; attempt++ {
		log.Printf("[speak] sending voice attempt=%d", attempt+1)
		voice := tgbotapi.NewVoice(chatID, tgbotapi.FilePath(oggPath))
		if _, err := app.sendFn(voice); err != nil {
			lastErr = err
			log.Printf("[speak] voice send failed attempt=%d: %v", attempt+1, err)
			time.Sleep(time.Duration(attempt+1) * app.retryDelay)
			continue
		}
		log.Printf("[speak] voice sent 🎤")
		return nil
	}

	log.Printf("[speak] falling back to sendAudio")
	for attempt := 0; attempt < 2; attempt++ {
		audioMsg := tgbotapi.NewAudio(chatID, tgbotapi.FilePath(oggPath))
		if _, err := app.sendFn(audioMsg); err != nil {
			lastErr = err
			log.Printf("[speak] audio send failed attempt=%d: %v", attempt+1, err)
			time.Sleep(time.Duration(attempt+1) * app.retryDelay)
			continue
		}
		log.Printf("[speak] audio sent")
		return nil
	}

	return lastErr
}

func (app *BotApp) editMessage(chatID int64, messageID int, text string) {
	if messageID == 0 {
		return
	}
	if _, err := app.bot.Request(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		log.Printf("[edit] fail: %v", err)
	}
}

func (app *BotApp) deleteMessage(chatID int64, messageID int) {
	if messageID == 0 {
		return
	}
	if _, err := app.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		log.Printf("[delete] fail: %v", err)
	}
}

func hasTranslatable(text string) bool {
	return dictionary.HasTranslatableWord(text)
}
