package models

import (
	"encoding/json"
	"fmt"
)

// QuestionType discriminates the question variants a quiz may contain.
type QuestionType string

const (
	QuestionText      QuestionType = "text"
	QuestionTrueFalse QuestionType = "true_false"
)

// Question is one entry in a quiz. Text questions carry a set of accepted
// answers; true/false questions carry the expected boolean.
type Question struct {
	Type            QuestionType `json:"type"`
	Question        string       `json:"question"`
	AcceptedAnswers []string     `json:"acceptedAnswers,omitempty"`
	Correct         bool         `json:"correct,omitempty"`
}

// Quiz is an externally supplied, read-only sequence of questions with a
// stable identifier. This system consumes quizzes, never writes them.
type Quiz struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Questions []*Question `json:"questions"`
}

// DecodeQuizCatalog parses the external quiz document (an array of quizzes).
func DecodeQuizCatalog(raw []byte) ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := json.Unmarshal(raw, &quizzes); err != nil {
		return nil, err
	}
	for _, q := range quizzes {
		if q == nil || q.ID == "" {
			return nil, fmt.Errorf("quiz catalog: quiz without id")
		}
	}
	return quizzes, nil
}
