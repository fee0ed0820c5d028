package cli

import (
	"fmt"
	"io"
	"os"

	"quiz-mcq/internal/adapter/quizgen"
	"quiz-mcq/internal/dto"

	"github.com/spf13/cobra"
)

// NewParseCmd parses a saved completion into the same envelope the API returns.
// The completion is read from the file argument, or from stdin when absent or "-".
func NewParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a model completion into questions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open completion: %w", err)
				}
				defer f.Close()
				in = f
			}

			raw, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read completion: %w", err)
			}

			questions := quizgen.ParseCompletion(string(raw))
			return writeJSON(cmd.OutOrStdout(), dto.NewGenerateQuizResponse(questions))
		},
	}
}
