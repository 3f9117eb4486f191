package quizdata

import (
	"fmt"
	"strings"

	"sentenceclash/internal/models"
	"sentenceclash/internal/quiz"
)

// ValidationError points at the record that failed validation
type ValidationError struct {
	Index   int
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("record %d: %s: %s", e.Index, e.Field, e.Message)
}

// Validate rejects an empty collection and any record with a missing sentence or a
// target that has no words once punctuation is stripped
func Validate(pairs []models.SentencePair) error {
	if len(pairs) == 0 {
		return quiz.ErrEmptyData
	}
	for i, p := range pairs {
		if strings.TrimSpace(p.Source) == "" {
			return ValidationError{Index: i, Field: "ja", Message: "source sentence is required"}
		}
		if len(quiz.Tokenize(p.Target)) == 0 {
			return ValidationError{Index: i, Field: "en", Message: "target sentence is required"}
		}
		if quiz.Normalize(p.Target) == "" {
			return ValidationError{Index: i, Field: "en", Message: "target sentence has no words"}
		}
	}
	return nil
}
