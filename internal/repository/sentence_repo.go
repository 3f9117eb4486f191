package repository

import (
	"fmt"

	"sentenceclash/internal/database"
	"sentenceclash/internal/models"
)

// SentenceRepository handles database operations for sentence pairs
type SentenceRepository struct {
	db *database.DB
}

// NewSentenceRepository creates a new sentence repository
func NewSentenceRepository(db *database.DB) *SentenceRepository {
	return &SentenceRepository{db: db}
}

// List returns every stored pair in insertion order
func (r *SentenceRepository) List() ([]models.SentencePair, error) {
	query := `
		SELECT id, source_text, target_text, created_at
		FROM sentence_pairs
		ORDER BY id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sentence pairs: %w", err)
	}
	defer rows.Close()

	var pairs []models.SentencePair
	for rows.Next() {
		var p models.SentencePair
		if err := rows.Scan(&p.ID, &p.Source, &p.Target, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sentence pair: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sentence pairs: %w", err)
	}

	return pairs, nil
}

// Count returns the number of stored pairs
func (r *SentenceRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM sentence_pairs").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sentence pairs: %w", err)
	}
	return count, nil
}

// InsertBatch stores pairs atomically. When replace is set the existing rows are
// removed in the same transaction.
func (r *SentenceRepository) InsertBatch(pairs []models.SentencePair, replace bool) (int, error) {
	inserted := 0
	err := r.db.WithTx(func(tx *database.Tx) error {
		if replace {
			if _, err := deleteAll(tx); err != nil {
				return err
			}
		}
		for _, p := range pairs {
			if _, err := insertPair(tx, p.Source, p.Target); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// DeleteAll removes every stored pair
func (r *SentenceRepository) DeleteAll() (int64, error) {
	return deleteAll(r.db)
}

func deleteAll(db database.DBTX) (int64, error) {
	result, err := db.Exec("DELETE FROM sentence_pairs")
	if err != nil {
		return 0, fmt.Errorf("failed to delete sentence pairs: %w", err)
	}
	return result.RowsAffected()
}

func insertPair(db database.DBTX, source, target string) (int64, error) {
	query := "INSERT INTO sentence_pairs (source_text, target_text) VALUES (?, ?)"
	id, err := db.ExecReturningID(query, source, target)
	if err != nil {
		return 0, fmt.Errorf("failed to insert sentence pair: %w", err)
	}
	return id, nil
}
