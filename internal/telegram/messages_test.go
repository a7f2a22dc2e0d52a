package telegram

import (
	"strings"
	"testing"
)

func TestMsgVoiceTooLong(t *testing.T) {
	got := MsgVoiceTooLong(60, 45)
	if !strings.Contains(got, "60 сек") || !strings.Contains(got, "45 сек") {
		t.Errorf("MsgVoiceTooLong = %q", got)
	}
}

func TestMsgTextTooLong(t *testing.T) {
	got := MsgTextTooLong(512, 400)
	if !strings.Contains(got, "512") || !strings.Contains(got, "400") {
		t.Errorf("MsgTextTooLong = %q", got)
	}
}

func TestMsgBusyWithTranslation(t *testing.T) {
	got := MsgBusyWithTranslation("монони губожя")
	if !strings.HasPrefix(got, "монони губожя") {
		t.Errorf("translation must come first: %q", got)
	}
	if !strings.Contains(got, "занят") {
		t.Errorf("busy note missing: %q", got)
	}
}
