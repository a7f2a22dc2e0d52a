package speech

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type WhisperClient struct {
	client *openai.Client
}

func NewWhisperClient() (*WhisperClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}
	return &WhisperClient{
		client: openai.NewClient(apiKey),
	}, nil
}

// VOICE → TEXT (русский)
func (c *WhisperClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
		Language: "ru",
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}
