package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Execute runs the CLI.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the quizctl command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "quizctl",
		Short:         "Build quiz prompts, parse model completions and generate MCQs from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewPromptCmd())
	cmd.AddCommand(NewParseCmd())
	cmd.AddCommand(NewGenerateCmd())
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
