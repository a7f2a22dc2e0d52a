package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config — всё окружение бота. Ошибки валидации фатальны на старте:
// лучше упасть сразу, чем молча работать с кривыми лимитами.
type Config struct {
	BotToken string

	DataDir    string // временная папка для скачанных voice-файлов
	DictPath   string
	SpeakerWAV string // референс-голос для клонирования (wav)

	// ffmpeg atempo: 1.0 = нормальная скорость, 0.67 ≈ в полтора раза медленнее
	SpeechTempo float64

	// таймаут для загрузок в Telegram
	TelegramTimeout time.Duration

	// лимиты входа
	MaxTextChars    int
	MaxVoiceSeconds int

	// HTTP-порт (healthcheck + API)
	Port string

	STTProvider string // whisper | deepgram
	TTSProvider string // xtts | elevenlabs
	TTSLanguage string

	AdminChatID int64  // чат для уведомлений об ошибках, 0 = выключено
	DatabaseURL string // пусто = без истории переводов
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	token := strings.TrimSpace(os.Getenv("BOT_TOKEN"))
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set (см. env.example)")
	}

	cfg := &Config{
		BotToken:    token,
		DataDir:     getenvDefault("DATA_DIR", "./tmp"),
		DictPath:    getenvDefault("DICT_PATH", "./dictionary.json"),
		SpeakerWAV:  getenvDefault("SPEAKER_WAV", "./speaker.wav"),
		STTProvider: strings.TrimSpace(os.Getenv("STT_PROVIDER")),
		TTSProvider: strings.TrimSpace(os.Getenv("TTS_PROVIDER")),
		TTSLanguage: getenvDefault("TTS_LANGUAGE", "ru"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
	}

	tempo, err := parseFloat("SPEECH_TEMPO", "0.67")
	if err != nil {
		return nil, err
	}
	if tempo < 0.5 || tempo > 2.0 {
		return nil, fmt.Errorf("SPEECH_TEMPO must be in 0.5..2.0 (ffmpeg atempo)")
	}
	cfg.SpeechTempo = tempo

	timeoutSec, err := parseFloat("TELEGRAM_TIMEOUT", "180")
	if err != nil {
		return nil, err
	}
	if timeoutSec < 30 {
		return nil, fmt.Errorf("TELEGRAM_TIMEOUT must be >= 30 seconds")
	}
	cfg.TelegramTimeout = time.Duration(timeoutSec * float64(time.Second))

	maxChars, err := parseInt("MAX_TEXT_CHARS", "400")
	if err != nil {
		return nil, err
	}
	if maxChars < 50 {
		return nil, fmt.Errorf("MAX_TEXT_CHARS must be >= 50")
	}
	cfg.MaxTextChars = maxChars

	maxVoice, err := parseInt("MAX_VOICE_SECONDS", "45")
	if err != nil {
		return nil, err
	}
	if maxVoice < 5 {
		return nil, fmt.Errorf("MAX_VOICE_SECONDS must be >= 5")
	}
	cfg.MaxVoiceSeconds = maxVoice

	// контейнерные платформы обычно отдают PORT для readiness probe
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = getenvDefault("HEALTH_PORT", "8080")
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("PORT/HEALTH_PORT must be in 1..65535, got %q", port)
	}
	cfg.Port = port

	if raw := strings.TrimSpace(os.Getenv("ADMIN_CHAT_ID")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_CHAT_ID: %q", raw)
		}
		cfg.AdminChatID = id
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseFloat(key, def string) (float64, error) {
	raw := getenvDefault(key, def)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}

func parseInt(key, def string) (int, error) {
	raw := getenvDefault(key, def)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}
