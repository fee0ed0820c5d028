package dto

import (
	"encoding/json"
	"testing"

	"quiz-mcq/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQuizRequest_ResolveTopic(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"topic only", `{"topic":"science"}`, "science"},
		{"prompt only", `{"prompt":"history"}`, "history"},
		{"topic wins over prompt", `{"topic":"math","prompt":"art"}`, "math"},
		{"empty topic falls back to prompt", `{"topic":"","prompt":"art"}`, "art"},
		{"null topic falls back to prompt", `{"topic":null,"prompt":"art"}`, "art"},
		{"neither", `{}`, ""},
		{"both empty", `{"topic":"","prompt":""}`, ""},
		{"whitespace topic is kept", `{"topic":"  ","prompt":"art"}`, "  "},
		{"unknown fields ignored", `{"subject":"x"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req GenerateQuizRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.ResolveTopic())
		})
	}

	var nilReq *GenerateQuizRequest
	assert.Equal(t, "", nilReq.ResolveTopic())
}

func TestNewGenerateQuizResponse(t *testing.T) {
	t.Run("failure envelope", func(t *testing.T) {
		for _, questions := range [][]domain.QuestionRecord{nil, {}} {
			data, err := json.Marshal(NewGenerateQuizResponse(questions))
			require.NoError(t, err)
			assert.JSONEq(t, `{"success":false,"message":"No questions generated"}`, string(data))
		}
	})

	t.Run("success envelope", func(t *testing.T) {
		questions := []domain.QuestionRecord{{
			Question:      "2 + 2?",
			Options:       []string{"3", "4", "5", "6"},
			CorrectAnswer: "4",
		}}
		data, err := json.Marshal(NewGenerateQuizResponse(questions))
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"questions":[{"question":"2 + 2?","options":["3","4","5","6"],"correctAnswer":"4"}]}`, string(data))
	})
}
