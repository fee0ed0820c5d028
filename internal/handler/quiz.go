package handler

import (
	"bytes"

	"quiz-mcq/internal/domain"
	"quiz-mcq/internal/dto"
	"quiz-mcq/internal/logger"
	"quiz-mcq/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GenerateQuiz godoc
// @Summary Generate multiple choice questions
// @Description Asks the language model for five MCQs on the given topic and returns the ones that parsed.
// @Description A reply with no usable question yields success=false with a message, still with status 200.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest false "Topic ('prompt' is accepted as an alias)"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /generate-quiz [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest

	// The body is decoded regardless of Content-Type; an empty body means no topic.
	if body := bytes.TrimSpace(c.Body()); len(body) > 0 {
		if err := c.App().Config().JSONDecoder(body, &req); err != nil {
			logger.Get().Debug("Rejecting malformed request body", zap.Error(err))
			return domain.NewInvalidInputError("Request body must be a JSON object")
		}
	}

	resp, err := h.service.GenerateQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *QuizHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}
