package config

import (
	"testing"
	"time"
)

func TestClipboardTimeoutDefault(t *testing.T) {
	t.Setenv("CLIPBOARD_TIMEOUT_SECONDS", "")

	if got := ClipboardTimeout(); got != 30*time.Second {
		t.Errorf("expected 30s default, got %s", got)
	}
}

func TestClipboardTimeoutFromEnv(t *testing.T) {
	t.Setenv("CLIPBOARD_TIMEOUT_SECONDS", "10")

	if got := ClipboardTimeout(); got != 10*time.Second {
		t.Errorf("expected 10s, got %s", got)
	}
}

func TestClipboardTimeoutInvalidValue(t *testing.T) {
	for _, v := range []string{"-5", "0", "soon"} {
		t.Setenv("CLIPBOARD_TIMEOUT_SECONDS", v)
		if got := ClipboardTimeout(); got != 30*time.Second {
			t.Errorf("value %q: expected 30s fallback, got %s", v, got)
		}
	}
}
