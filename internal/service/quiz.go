package service

import (
	"context"

	"quiz-mcq/internal/adapter/quizgen"
	"quiz-mcq/internal/domain"
	"quiz-mcq/internal/dto"
	"quiz-mcq/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz generation
type QuizService interface {
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
}

// quizService implements QuizService
type quizService struct {
	client domain.CompletionClient
	parser *quizgen.Parser
}

// NewQuizService creates a new instance of quizService
func NewQuizService(client domain.CompletionClient, parser *quizgen.Parser) QuizService {
	if parser == nil {
		parser = quizgen.NewParser(nil)
	}
	return &quizService{
		client: client,
		parser: parser,
	}
}

// GenerateQuiz builds the prompt for the requested topic, makes one model call and
// parses the reply. A reply without any valid question is not an error; it yields
// the failure envelope. Errors come only from the model call.
func (s *quizService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	topic := req.ResolveTopic()
	prompt := quizgen.BuildPrompt(topic)

	completion, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions := s.parser.Parse(completion)
	if len(questions) == 0 {
		logger.Get().Warn("No questions parsed from LLM response",
			zap.String("topic", topic),
			zap.Int("response_length", len(completion)),
		)
	} else {
		logger.Get().Info("Generated quiz",
			zap.String("topic", topic),
			zap.Int("num_questions", len(questions)),
		)
	}

	return dto.NewGenerateQuizResponse(questions), nil
}
