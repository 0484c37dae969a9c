package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/securepassgen/securepassgen-go/internal/password"
)

func newAssessCmd() *cobra.Command {
	var guessesPerSecond float64

	cmd := &cobra.Command{
		Use:   "assess <password>",
		Short: "Assess the strength of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assessor := password.NewAssessor()
			if guessesPerSecond > 0 {
				assessor.GuessesPerSecond = guessesPerSecond
			}

			result := assessor.Assess(args[0])

			fmt.Fprintln(cmd.OutOrStdout(), renderAssessment(result))

			if result.HasWeakPattern {
				log.Warn("password contains a weak or predictable pattern")
			}
			if result.HasDictionaryWord {
				log.Warn("password contains a dictionary word")
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&guessesPerSecond, "guesses-per-second", 0, "attacker guess rate for crack time estimation")

	return cmd
}

// renderAssessment draws the assessment panel: strength label, score
// bar, entropy and humanized crack time.
func renderAssessment(a password.Assessment) string {
	var b strings.Builder

	label := strengthStyle(a.Strength).Render(a.Strength.String())
	fmt.Fprintf(&b, "Strength:   %s\n", label)
	fmt.Fprintf(&b, "Score:      %s %d/100\n", scoreBar(a.Score), a.Score)
	fmt.Fprintf(&b, "Entropy:    %.1f bits\n", a.Entropy)
	fmt.Fprintf(&b, "Crack time: %s", password.FormatCrackTime(a.CrackTimeSeconds))

	return panelStyle.Render(b.String())
}

// scoreBar renders a 20-cell bar, one cell per 5 score points.
func scoreBar(score int) string {
	filled := score / 5
	if filled > 20 {
		filled = 20
	}
	return barStyle.Render(strings.Repeat("█", filled) + strings.Repeat("░", 20-filled))
}
