package audio

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestAtempoArgs(t *testing.T) {
	args := Atempo(0.67)
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "atempo=0.67") {
		t.Errorf("Atempo(0.67) = %v", args)
	}

	args = Atempo(1.5)
	if !strings.Contains(strings.Join(args, " "), "atempo=1.5") {
		t.Errorf("Atempo(1.5) = %v", args)
	}
}

func TestToVoiceOGGArgs(t *testing.T) {
	joined := strings.Join(ToVoiceOGG(), " ")
	for _, want := range []string{"libopus", "24k", "voip", "-ac 1"} {
		if !strings.Contains(joined, want) {
			t.Errorf("ToVoiceOGG missing %q: %s", want, joined)
		}
	}
}

func TestToWAV16kMonoArgs(t *testing.T) {
	joined := strings.Join(ToWAV16kMono(), " ")
	for _, want := range []string{"16000", "-ac 1", "pcm_s16le"} {
		if !strings.Contains(joined, want) {
			t.Errorf("ToWAV16kMono missing %q: %s", want, joined)
		}
	}
}

func TestTempFile(t *testing.T) {
	dir := t.TempDir()
	a := TempFile(dir, ".wav")
	b := TempFile(dir, ".wav")
	if a == b {
		t.Error("TempFile returned identical paths")
	}
	if filepath.Ext(a) != ".wav" {
		t.Errorf("TempFile ext = %s", filepath.Ext(a))
	}
	if filepath.Dir(a) != dir {
		t.Errorf("TempFile dir = %s, want %s", filepath.Dir(a), dir)
	}
}
