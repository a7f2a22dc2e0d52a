package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
)

// EnsureFFmpeg проверяет, что ffmpeg есть в PATH
// (нужен для конвертации Telegram voice/ogg).
func EnsureFFmpeg() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg не найден в PATH: %w", err)
	}
	return nil
}

// Convert запускает: ffmpeg -y -i <input> <outputArgs...> <output>
func Convert(ctx context.Context, inputPath, outputPath string, outputArgs []string) error {
	args := []string{"-y", "-hide_banner", "-loglevel", "error", "-i", inputPath}
	args = append(args, outputArgs...)
	args = append(args, outputPath)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg %s -> %s: %w: %s", inputPath, outputPath, err, out)
	}
	return nil
}

// ToWAV16kMono — аргументы для подготовки аудио под ASR (16 kHz, mono, pcm).
func ToWAV16kMono() []string {
	return []string{"-ar", "16000", "-ac", "1", "-c:a", "pcm_s16le"}
}

// Atempo — замедление/ускорение без изменения высоты тона.
// 1.0 = нормальная скорость, 0.67 ≈ в полтора раза медленнее.
func Atempo(tempo float64) []string {
	return []string{"-filter:a", fmt.Sprintf("atempo=%g", tempo), "-c:a", "pcm_s16le"}
}

// ToVoiceOGG — opus-настройки под telegram voice note (меньше размер —
// меньше таймаутов при отправке).
func ToVoiceOGG() []string {
	return []string{"-ac", "1", "-c:a", "libopus", "-b:a", "24k", "-vbr", "on", "-application", "voip"}
}

// TempFile возвращает путь для временного файла с нужным расширением.
func TempFile(dir, suffix string) string {
	return filepath.Join(dir, uuid.NewString()+suffix)
}

// Cleanup удаляет временные файлы, игнорируя ошибки.
func Cleanup(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		_ = os.Remove(p)
	}
}
