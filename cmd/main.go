package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/jangaloga/jangaloga-bot/internal/audio"
	"github.com/jangaloga/jangaloga-bot/internal/config"
	"github.com/jangaloga/jangaloga-bot/internal/delivery"
	"github.com/jangaloga/jangaloga-bot/internal/dictionary"
	"github.com/jangaloga/jangaloga-bot/internal/infra"
	"github.com/jangaloga/jangaloga-bot/internal/notify"
	"github.com/jangaloga/jangaloga-bot/internal/records"
	"github.com/jangaloga/jangaloga-bot/internal/speech"
	"github.com/jangaloga/jangaloga-bot/internal/telegram"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := audio.EnsureFFmpeg(); err != nil {
		log.Fatalf("%v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// DB (опционально: без DATABASE_URL история переводов не пишется)
	// =========================================================================

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.PingContext(ctx); err != nil {
			cancel()
			log.Fatalf("db ping failed: %v", err)
		}
		cancel()
		defer db.Close()
	}

	var recordRepo records.Repo
	if db != nil {
		recordRepo = records.NewRepo(db)
	}
	recordService := records.NewService(recordRepo)

	// =========================================================================
	// ИНФРАСТРУКТУРА
	// =========================================================================

	s3Client, err := infra.NewS3Client()
	if err != nil {
		log.Fatalf("failed to init s3: %v", err)
	}
	if s3Client == nil {
		log.Printf("[main] S3 не настроен, архив озвучек выключен")
	}

	dict, err := dictionary.Load(cfg.DictPath)
	if err != nil {
		log.Fatalf("failed to load dictionary: %v", err)
	}
	if dict.Size() == 0 {
		log.Printf("[main] словарь пуст (%s). Сначала: go run ./cmd/dictbuild --out %q", cfg.DictPath, cfg.DictPath)
	} else {
		log.Printf("[main] dictionary loaded: %d entries", dict.Size())
	}

	// =========================================================================
	// КЛИЕНТЫ (STT / TTS)
	// =========================================================================

	sttClient, err := speech.NewSTTClient(cfg.STTProvider)
	if err != nil {
		log.Fatalf("stt client: %v", err)
	}
	ttsClient, err := speech.NewTTSClient(cfg.TTSProvider, cfg.SpeakerWAV, cfg.TTSLanguage)
	if err != nil {
		log.Fatalf("tts client: %v", err)
	}

	speechService := speech.NewService(sttClient, ttsClient)

	// =========================================================================
	// TELEGRAM BOT
	// =========================================================================

	errInfra := notify.NewInfra(cfg.AdminChatID)

	botApp := telegram.NewBotApp(
		cfg,
		speechService,
		dict,
		recordService,
		s3Client,
		errInfra,
	)

	if err := botApp.InitBot(); err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}

	errInfra.SetBot(botApp.Bot())

	// =========================================================================
	// HTTP ROUTER (probes + API)
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	apiHandler := delivery.NewHandler(dict, recordService, cfg.MaxTextChars, zl)
	delivery.RegisterRoutes(r, apiHandler)

	// =========================================================================
	// BACKGROUND JOBS
	// =========================================================================

	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()

		tmpDir := filepath.Join(cfg.DataDir, "tmp")
		for range ticker.C {
			if n := sweepStaleFiles(tmpDir, time.Hour); n > 0 {
				log.Printf("[tmp-sweep] removed %d stale files", n)
			}
		}
	}()

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "jangaloga-bot",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// sweepStaleFiles убирает забытые временные файлы (обычно их удаляют
// сами хендлеры, но после падений может оставаться мусор)
func sweepStaleFiles(dir string, olderThan time.Duration) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	removed := 0
	cutoff := time.Now().Add(-olderThan)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if os.Remove(filepath.Join(dir, e.Name())) == nil {
			removed++
		}
	}
	return removed
}
