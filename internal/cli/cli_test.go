package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/atotto/clipboard"

	"github.com/securepassgen/securepassgen-go/internal/password"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateFlagsOptions(t *testing.T) {
	flags := generateFlags{
		length:     20,
		lower:      true,
		upper:      true,
		digits:     true,
		special:    false,
		requireAll: true,
		minDigits:  2,
		minSpecial: 1,
	}

	opts := flags.options()
	if opts.Length != 20 {
		t.Errorf("expected length 20, got %d", opts.Length)
	}
	if opts.MinDigits != 2 {
		t.Errorf("expected min digits 2, got %d", opts.MinDigits)
	}
	if opts.MinSpecial != 0 {
		t.Error("min special must drop to 0 when the class is disabled")
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("expected valid options, got %v", err)
	}
}

func TestGenerateCommand_Quiet(t *testing.T) {
	out, err := runCommand(t, "generate", "--length", "12", "--quiet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pw := strings.TrimSpace(out)
	if len(pw) != 12 {
		t.Errorf("expected a 12-character password, got %q", pw)
	}
}

func TestGenerateCommand_Count(t *testing.T) {
	out, err := runCommand(t, "generate", "--count", "3", "--quiet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 passwords, got %d lines", len(lines))
	}
}

func TestGenerateCommand_CountOutOfRange(t *testing.T) {
	_, err := runCommand(t, "generate", "--count", "101")
	if err == nil {
		t.Fatal("expected error for count over the bulk limit")
	}
}

func TestGenerateCommand_InvalidLength(t *testing.T) {
	_, err := runCommand(t, "generate", "--length", "4")
	if err == nil {
		t.Fatal("expected error for length below minimum")
	}
}

func TestGenerateCommand_CSV(t *testing.T) {
	out, err := runCommand(t, "generate", "--format", "csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "Index,Timestamp,Password,") {
		t.Errorf("expected CSV header, got %q", strings.SplitN(out, "\n", 2)[0])
	}
}

func TestGenerateCommand_Pattern(t *testing.T) {
	out, err := runCommand(t, "generate", "--pattern", "nnnn", "--quiet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pw := strings.TrimSpace(out)
	if len(pw) != 4 {
		t.Fatalf("expected 4 characters, got %q", pw)
	}
	for _, c := range pw {
		if c < '0' || c > '9' {
			t.Errorf("expected digits only, got %q", pw)
		}
	}
}

func TestGenerateCommand_CopyBlocksUntilClear(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("no clipboard available in this environment")
	}

	start := time.Now()
	out, err := runCommand(t, "generate", "--quiet", "--copy", "--clip-timeout", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The command stays alive through the clear window; a clear scheduled
	// past process exit would never run.
	if time.Since(start) < time.Second {
		t.Fatal("command returned before the clipboard clear window elapsed")
	}
	if len(strings.TrimSpace(out)) == 0 {
		t.Error("expected the password to be printed before the clear window")
	}

	contents, err := clipboard.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if contents != "" {
		t.Errorf("clipboard still holds %q after the clear window", contents)
	}
}

func TestGenerateCommand_CopyUnavailableStillPrints(t *testing.T) {
	if !clipboard.Unsupported {
		t.Skip("clipboard available, unsupported path not reachable")
	}

	out, err := runCommand(t, "generate", "--quiet", "--copy", "--clip-timeout", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(strings.TrimSpace(out)) != 16 {
		t.Errorf("expected the default-length password on stdout, got %q", out)
	}
}

func TestAssessCommand(t *testing.T) {
	out, err := runCommand(t, "assess", "Zm4Qv8XrTkWp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Entropy:") {
		t.Errorf("expected assessment panel, got %q", out)
	}
	if !strings.Contains(out, password.Strong.String()) {
		t.Errorf("expected Strong label in output: %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "securepassgen") {
		t.Errorf("unexpected version output: %q", out)
	}
}
