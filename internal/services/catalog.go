package services

import (
	"fmt"
	"os"

	"github.com/cardbox/cardbox/internal/models"
)

// LoadQuizCatalogFile reads the external quiz document once at startup. A
// read or parse failure here is fatal to the session's quiz feature; the
// error propagates to the caller and is reported there, nowhere else.
func LoadQuizCatalogFile(path string) ([]*models.Quiz, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz catalog: %w", err)
	}
	quizzes, err := models.DecodeQuizCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("parse quiz catalog: %w", err)
	}
	return quizzes, nil
}
