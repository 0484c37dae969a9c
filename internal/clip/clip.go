package clip

import (
	"time"

	"github.com/atotto/clipboard"
)

// DefaultTimeout is how long a copied password stays on the clipboard.
const DefaultTimeout = 30 * time.Second

// Copy places the password on the clipboard.
func Copy(password string) error {
	return clipboard.WriteAll(password)
}

// CopyWithTimeout places the password on the clipboard, blocks for the
// timeout, then clears it. The caller stays alive for the whole window,
// which makes the clear reliable from short-lived processes. If
// something else was copied over the password in the meantime the
// clipboard is left alone.
func CopyWithTimeout(password string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if err := clipboard.WriteAll(password); err != nil {
		return err
	}

	time.Sleep(timeout)

	current, err := clipboard.ReadAll()
	if err == nil && current != password {
		return nil
	}
	return clipboard.WriteAll("")
}

// Clear empties the clipboard.
func Clear() error {
	return clipboard.WriteAll("")
}
