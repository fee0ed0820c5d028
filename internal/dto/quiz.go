package dto

import "quiz-mcq/internal/domain"

// NoQuestionsMessage is returned when the model reply contained no usable question.
const NoQuestionsMessage = "No questions generated"

// GenerateQuizRequest is the body of POST /generate-quiz
// @Description Topic to generate questions for. "prompt" is accepted as an alias.
type GenerateQuizRequest struct {
	Topic  string `json:"topic" example:"history"`
	Prompt string `json:"prompt,omitempty"`
}

// ResolveTopic returns topic if set, otherwise prompt, otherwise an empty string.
func (r *GenerateQuizRequest) ResolveTopic() string {
	if r == nil {
		return ""
	}
	if r.Topic != "" {
		return r.Topic
	}
	return r.Prompt
}

// GenerateQuizResponse is the envelope returned by POST /generate-quiz
// @Description Either success with questions, or failure with a message.
type GenerateQuizResponse struct {
	Success   bool                    `json:"success"`
	Questions []domain.QuestionRecord `json:"questions,omitempty"`
	Message   string                  `json:"message,omitempty"`
}

// NewGenerateQuizResponse wraps parsed records; an empty list becomes the failure envelope.
func NewGenerateQuizResponse(questions []domain.QuestionRecord) *GenerateQuizResponse {
	if len(questions) == 0 {
		return &GenerateQuizResponse{Success: false, Message: NoQuestionsMessage}
	}
	return &GenerateQuizResponse{Success: true, Questions: questions}
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
