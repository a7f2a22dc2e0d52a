package speech

import (
	"context"
	"fmt"
)

// === Интерфейсы ===

type STTClient interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
}

type TTSClient interface {
	Synthesize(ctx context.Context, text, outPath string) error
}

// === Единый сервис (и для стт и для ттс) ===

type Service struct {
	stt STTClient
	tts TTSClient
}

func NewService(stt STTClient, tts TTSClient) *Service {
	return &Service{
		stt: stt,
		tts: tts,
	}
}

func (s *Service) Transcribe(ctx context.Context, filePath string) (string, error) {
	return s.stt.Transcribe(ctx, filePath)
}

func (s *Service) Synthesize(ctx context.Context, text, outPath string) error {
	return s.tts.Synthesize(ctx, text, outPath)
}

// === Выбор провайдеров по env ===

func NewSTTClient(provider string) (STTClient, error) {
	switch provider {
	case "", "whisper":
		return NewWhisperClient()
	case "deepgram":
		return NewDeepgramClient()
	default:
		return nil, fmt.Errorf("unknown STT_PROVIDER: %q", provider)
	}
}

func NewTTSClient(provider, speakerWAV, language string) (TTSClient, error) {
	switch provider {
	case "", "xtts":
		return NewXTTSClient(speakerWAV, language)
	case "elevenlabs":
		return NewElevenLabsClient()
	default:
		return nil, fmt.Errorf("unknown TTS_PROVIDER: %q", provider)
	}
}
