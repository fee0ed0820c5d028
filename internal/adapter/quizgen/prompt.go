package quizgen

import "fmt"

const (
	// Temperature is the sampling temperature used for quiz generation.
	Temperature = 0.7
	// MaxTokens caps the length of the model's completion.
	MaxTokens = 800
)

const promptTemplate = `Generate exactly 5 multiple choice questions (MCQs) on the topic '%s'.

Each question should have options a), b), c), d), and correct answer letter.

Format:
Question: <question text>
a) <option a>
b) <option b>
c) <option c>
d) <option d>
Answer: <correct option letter>`

// BuildPrompt renders the generation prompt for topic. The topic is substituted
// as-is; nothing is escaped.
func BuildPrompt(topic string) string {
	return fmt.Sprintf(promptTemplate, topic)
}
