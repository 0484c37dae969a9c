package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/securepassgen/securepassgen-go/internal/clip"
	"github.com/securepassgen/securepassgen-go/internal/config"
	"github.com/securepassgen/securepassgen-go/internal/export"
	"github.com/securepassgen/securepassgen-go/internal/password"
)

const maxBulkCount = 100

type generateFlags struct {
	length         int
	lower          bool
	upper          bool
	digits         bool
	special        bool
	avoidAmbiguous bool
	requireAll     bool
	minDigits      int
	minSpecial     int
	count          int
	pattern        string
	copyToClip     bool
	clipTimeout    int
	output         string
	format         string
	annotate       bool
	quiet          bool
}

// options maps the flag set onto generator options.
func (f generateFlags) options() password.Options {
	opts := password.Options{
		Length:          f.length,
		Lowercase:       f.lower,
		Uppercase:       f.upper,
		Digits:          f.digits,
		Special:         f.special,
		AvoidAmbiguous:  f.avoidAmbiguous,
		RequireAllTypes: f.requireAll,
		MinDigits:       f.minDigits,
		MinSpecial:      f.minSpecial,
	}
	if !opts.Digits {
		opts.MinDigits = 0
	}
	if !opts.Special {
		opts.MinSpecial = 0
	}
	return opts
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more random passwords",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}

	defaults := password.DefaultOptions()
	cmd.Flags().IntVarP(&flags.length, "length", "l", defaults.Length, "password length (8-128)")
	cmd.Flags().BoolVar(&flags.lower, "lower", defaults.Lowercase, "include lowercase letters")
	cmd.Flags().BoolVar(&flags.upper, "upper", defaults.Uppercase, "include uppercase letters")
	cmd.Flags().BoolVar(&flags.digits, "digits", defaults.Digits, "include digits")
	cmd.Flags().BoolVar(&flags.special, "special", defaults.Special, "include special characters")
	cmd.Flags().BoolVar(&flags.avoidAmbiguous, "avoid-ambiguous", false, "exclude ambiguous characters (lI1O0)")
	cmd.Flags().BoolVar(&flags.requireAll, "require-all", defaults.RequireAllTypes, "require every enabled class to appear")
	cmd.Flags().IntVar(&flags.minDigits, "min-digits", defaults.MinDigits, "minimum number of digits")
	cmd.Flags().IntVar(&flags.minSpecial, "min-special", defaults.MinSpecial, "minimum number of special characters")
	cmd.Flags().IntVarP(&flags.count, "count", "n", 1, "number of passwords to generate (1-100)")
	cmd.Flags().StringVarP(&flags.pattern, "pattern", "p", "", "generate from a class pattern (l/U/n/s)")
	cmd.Flags().BoolVarP(&flags.copyToClip, "copy", "c", false, "copy the first password to the clipboard and clear it after the timeout")
	cmd.Flags().IntVar(&flags.clipTimeout, "clip-timeout", int(config.ClipboardTimeout().Seconds()), "seconds before the copied password is cleared")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write results to a file instead of stdout")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text, csv or json")
	cmd.Flags().BoolVarP(&flags.annotate, "annotate", "a", false, "append strength details to text output")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "print passwords only")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags generateFlags) error {
	if flags.count < 1 || flags.count > maxBulkCount {
		return fmt.Errorf("count must be between 1 and %d", maxBulkCount)
	}

	format, err := export.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	src, err := password.NewCryptoSource()
	if err != nil {
		return err
	}
	gen := password.NewGenerator(src)

	records := make([]export.Record, 0, flags.count)
	var first string
	for i := 0; i < flags.count; i++ {
		var pw *password.Password
		if flags.pattern != "" {
			pw, err = gen.GenerateFromPattern(flags.pattern)
		} else {
			pw, err = gen.Generate(flags.options())
		}
		if err != nil {
			return err
		}

		if i == 0 {
			first = pw.String()
		}
		records = append(records, export.Record{
			Password: pw.String(),
			Length:   pw.Length,
			Entropy:  pw.Entropy,
			Score:    pw.Score,
			Strength: pw.Strength.String(),
		})
		pw.Wipe()
	}

	annotate := flags.annotate && !flags.quiet

	if flags.output != "" {
		f, err := os.OpenFile(flags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.Write(f, format, records, annotate); err != nil {
			return err
		}
	} else if err := export.Write(cmd.OutOrStdout(), format, records, annotate); err != nil {
		return err
	}

	if flags.copyToClip {
		timeout := time.Duration(flags.clipTimeout) * time.Second
		if !flags.quiet {
			log.Infof("copying to clipboard, clearing in %s", timeout)
		}
		// Blocks for the whole window so the clear actually happens
		// before the process exits.
		if err := clip.CopyWithTimeout(first, timeout); err != nil {
			log.Warnf("clipboard copy failed: %v", err)
		}
	}

	return nil
}
