package domain

// OptionLetters are the option labels in the order they appear in a question block.
var OptionLetters = [4]string{"a", "b", "c", "d"}

// QuestionRecord is one multiple-choice question extracted from a model completion
type QuestionRecord struct {
	Question      string   `json:"question" example:"What is the capital of France?"`
	Options       []string `json:"options" example:"Paris,Rome,Madrid,Berlin"`
	CorrectAnswer string   `json:"correctAnswer" example:"Paris"`
}

// NewQuestionRecord builds a record from the four option texts (a, b, c, d) and the
// letter of the correct option. The correct answer is resolved to the option text,
// so it is always one of Options. It returns false if the letter is not a..d.
func NewQuestionRecord(question string, options [4]string, answerLetter string) (QuestionRecord, bool) {
	byLetter := make(map[string]string, len(OptionLetters))
	for i, letter := range OptionLetters {
		byLetter[letter] = options[i]
	}

	correct, ok := byLetter[answerLetter]
	if !ok {
		return QuestionRecord{}, false
	}

	return QuestionRecord{
		Question:      question,
		Options:       []string{options[0], options[1], options[2], options[3]},
		CorrectAnswer: correct,
	}, true
}
