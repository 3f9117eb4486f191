package service

import (
	"fmt"
	"io"
	"log"
	"os"

	"sentenceclash/internal/models"
	"sentenceclash/internal/quiz"
	"sentenceclash/internal/quizdata"
	"sentenceclash/internal/repository"
)

// SentenceService manages the stored sentence pair collection
type SentenceService struct {
	repo *repository.SentenceRepository
}

// NewSentenceService creates a new sentence service
func NewSentenceService(repo *repository.SentenceRepository) *SentenceService {
	return &SentenceService{repo: repo}
}

// Pairs returns every stored pair
func (s *SentenceService) Pairs() ([]models.SentencePair, error) {
	return s.repo.List()
}

// SeedIfEmpty stores pairs when the table has no rows yet and returns how many were added
func (s *SentenceService) SeedIfEmpty(pairs []models.SentencePair) (int, error) {
	count, err := s.repo.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	if err := quizdata.Validate(pairs); err != nil {
		return 0, err
	}
	return s.repo.InsertBatch(pairs, false)
}

// Clear removes every stored pair and returns how many were deleted
func (s *SentenceService) Clear() (int64, error) {
	n, err := s.repo.DeleteAll()
	if err != nil {
		return 0, err
	}
	log.Printf("Deleted %d sentence pairs", n)
	return n, nil
}

// Stats summarizes the stored collection
func (s *SentenceService) Stats() (models.SentencePairStats, error) {
	pairs, err := s.repo.List()
	if err != nil {
		return models.SentencePairStats{}, err
	}

	stats := models.SentencePairStats{TotalPairs: len(pairs)}
	for _, p := range pairs {
		n := len(quiz.Tokenize(p.Target))
		stats.TotalTokens += n
		if n > stats.LongestWords {
			stats.LongestWords = n
		}
	}
	return stats, nil
}

// Export writes the stored pairs to w
func (s *SentenceService) Export(w io.Writer, format quizdata.Format) (int, error) {
	pairs, err := s.repo.List()
	if err != nil {
		return 0, err
	}
	if err := quizdata.Write(w, pairs, format); err != nil {
		return 0, err
	}
	return len(pairs), nil
}

// ExportFile writes the stored pairs to outputPath, choosing the format by extension
func (s *SentenceService) ExportFile(outputPath string) error {
	log.Println("Starting sentence pair export...")

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	n, err := s.Export(f, quizdata.FormatForPath(outputPath))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to export sentence pairs: %w", err)
	}

	log.Printf("Exported %d sentence pairs to %s", n, outputPath)
	return nil
}

// Import validates and stores pairs read from r. With replace set the existing
// collection is swapped out atomically.
func (s *SentenceService) Import(r io.Reader, format quizdata.Format, replace bool) (int, error) {
	pairs, err := quizdata.Load(r, format)
	if err != nil {
		return 0, err
	}
	return s.repo.InsertBatch(pairs, replace)
}

// ImportFile imports the pairs in inputPath
func (s *SentenceService) ImportFile(inputPath string, replace bool) error {
	log.Printf("Starting sentence pair import from %s...", inputPath)

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	n, err := s.Import(f, quizdata.FormatForPath(inputPath), replace)
	if err != nil {
		return fmt.Errorf("failed to import sentence pairs: %w", err)
	}

	log.Printf("Imported %d sentence pairs", n)
	return nil
}
