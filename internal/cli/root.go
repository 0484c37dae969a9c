package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev" // set by the linker

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		// Cobra already printed the error.
		os.Exit(1)
	}
}

// newRootCmd creates a fresh root command. Tests build their own
// instances so flag state never leaks between runs.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "securepassgen",
		Short: "Generate and assess strong random passwords",
		Long: `SecurePassGen generates constrained random passwords from a
cryptographically secure source and assesses the strength of any
password: entropy, weak patterns, dictionary words and estimated
crack time.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newAssessCmd())
	cmd.AddCommand(newVersionCmd())

	cmd.Version = version

	return cmd
}
