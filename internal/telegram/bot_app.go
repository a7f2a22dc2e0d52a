package telegram

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/jangaloga/jangaloga-bot/internal/config"
	"github.com/jangaloga/jangaloga-bot/internal/dictionary"
	"github.com/jangaloga/jangaloga-bot/internal/infra"
	"github.com/jangaloga/jangaloga-bot/internal/notify"
	"github.com/jangaloga/jangaloga-bot/internal/records"
	"github.com/jangaloga/jangaloga-bot/internal/speech"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type BotApp struct {
	Cfg           *config.Config
	SpeechService *speech.Service
	Dict          *dictionary.Dictionary
	RecordService *records.Service
	S3            infra.S3Client
	Notify        notify.Notificator

	bot *tgbotapi.BotAPI

	// все исходящие сообщения идут через sendFn (по умолчанию bot.Send)
	sendFn func(tgbotapi.Chattable) (tgbotapi.Message, error)

	// базовая пауза между повторами отправки voice
	retryDelay time.Duration

	// один STT/TTS-пайплайн за раз: модели тяжёлые, параллельные
	// синтезы повалили бы хост
	busy sync.Mutex
}

func NewBotApp(
	cfg *config.Config,
	speechService *speech.Service,
	dict *dictionary.Dictionary,
	recordService *records.Service,
	s3 infra.S3Client,
	notificator notify.Notificator,
) *BotApp {
	return &BotApp{
		Cfg:           cfg,
		SpeechService: speechService,
		Dict:          dict,
		RecordService: recordService,
		S3:            s3,
		Notify:        notificator,
		retryDelay:    2 * time.Second,
	}
}

func (app *BotApp) InitBot() error {
	bot, err := tgbotapi.NewBotAPIWithClient(
		app.Cfg.BotToken,
		tgbotapi.APIEndpoint,
		&http.Client{Timeout: app.Cfg.TelegramTimeout},
	)
	if err != nil {
		return err
	}

	app.bot = bot
	app.sendFn = bot.Send
	log.Printf("[bot_app] ready: @%s", bot.Self.UserName)

	// если раньше стоял webhook, polling будет падать с конфликтом,
	// пока его не снять
	if _, err := bot.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
		log.Printf("[bot_app] delete webhook fail (non-fatal): %v", err)
	}

	go app.runBotLoop()
	return nil
}

func (app *BotApp) Bot() *tgbotapi.BotAPI {
	return app.bot
}
