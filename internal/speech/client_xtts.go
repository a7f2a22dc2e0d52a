package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// XTTSClient — клиент xtts-api-server (Coqui XTTS v2, voice cloning).
// Референс-голос задаётся один раз: speaker_wav лежит рядом с сервером,
// мы передаём только его имя.
type XTTSClient struct {
	baseURL    string
	speakerWAV string
	language   string
	client     *http.Client
}

func NewXTTSClient(speakerWAV, language string) (*XTTSClient, error) {
	baseURL := os.Getenv("XTTS_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("XTTS_URL not set")
	}

	return &XTTSClient{
		baseURL:    baseURL,
		speakerWAV: speakerWAV,
		language:   language,
		// синтез на CPU может занимать десятки секунд
		client: &http.Client{Timeout: 5 * time.Minute},
	}, nil
}

// TEXT → SPEECH (wav в фиксированном клонированном голосе)
func (c *XTTSClient) Synthesize(ctx context.Context, text, outPath string) error {
	payload, err := json.Marshal(map[string]string{
		"text":        text,
		"speaker_wav": c.speakerWAV,
		"language":    c.language,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/tts_to_audio/", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/wav")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("xtts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("xtts failed: %s", string(b))
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}
