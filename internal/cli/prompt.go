package cli

import (
	"fmt"

	"quiz-mcq/internal/adapter/quizgen"

	"github.com/spf13/cobra"
)

// NewPromptCmd prints the prompt that would be sent to the model for a topic.
func NewPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt <topic>",
		Short: "Print the generation prompt for a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), quizgen.BuildPrompt(args[0]))
			return err
		},
	}
}
