package cli

import (
	"strings"

	"quiz-mcq/internal/adapter/llm"
	"quiz-mcq/internal/adapter/quizgen"
	"quiz-mcq/internal/config"
	"quiz-mcq/internal/dto"
	"quiz-mcq/internal/logger"
	"quiz-mcq/internal/service"

	"github.com/spf13/cobra"
)

// NewGenerateCmd runs one generation against the configured model and prints the result.
func NewGenerateCmd() *cobra.Command {
	var (
		provider string
		model    string
	)

	cmd := &cobra.Command{
		Use:   "generate <topic>",
		Short: "Generate MCQs for a topic using the configured model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadGenerateConfig(provider, model)
			if err != nil {
				return err
			}
			if err := logger.Initialize(cfg.Logger); err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			m, err := llm.NewModel(cfg.LLM)
			if err != nil {
				return err
			}
			client := llm.NewCompletionClient(m, cfg.LLM.Model, quizgen.Temperature, quizgen.MaxTokens, cfg.LLM.Timeout)
			svc := service.NewQuizService(client, quizgen.NewParser(logger.Get()))

			return runGenerate(cmd, svc, args[0])
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "override the configured LLM provider (openai or ollama)")
	cmd.Flags().StringVar(&model, "model", "", "override the configured model name")
	return cmd
}

// loadGenerateConfig applies the flag overrides before validating, so a flag can
// correct a bad provider or model coming from the environment.
func loadGenerateConfig(provider, model string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if provider != "" {
		cfg.LLM.Provider = strings.ToLower(provider)
	}
	if model != "" {
		cfg.LLM.Model = model
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, svc service.QuizService, topic string) error {
	resp, err := svc.GenerateQuiz(cmd.Context(), &dto.GenerateQuizRequest{Topic: topic})
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), resp)
}
