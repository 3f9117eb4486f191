package repository

import (
	"path/filepath"
	"testing"

	"sentenceclash/internal/database"
	"sentenceclash/internal/models"
)

func newTestRepo(t *testing.T) *SentenceRepository {
	t.Helper()
	db, err := database.Initialize(filepath.Join(t.TempDir(), "sentences.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSentenceRepository(db)
}

func TestSentenceRepositoryBatch(t *testing.T) {
	repo := newTestRepo(t)

	batch := []models.SentencePair{
		{Source: "猫です。", Target: "It is a cat."},
		{Source: "犬です。", Target: "It is a dog."},
		{Source: "私は学生です。", Target: "I am a student."},
	}

	n, err := repo.InsertBatch(batch, false)
	if err != nil || n != 3 {
		t.Fatalf("InsertBatch() = %d, %v", n, err)
	}

	pairs, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(pairs) != 3 {
		t.Fatalf("List() returned %d pairs, want 3", len(pairs))
	}
	for i, p := range pairs {
		if p.Target != batch[i].Target {
			t.Errorf("pairs[%d].Target = %q, want %q", i, p.Target, batch[i].Target)
		}
	}

	// Replace swaps the whole collection
	if _, err := repo.InsertBatch(batch[:1], true); err != nil {
		t.Fatalf("InsertBatch(replace) error = %v", err)
	}
	count, err := repo.Count()
	if err != nil || count != 1 {
		t.Errorf("Count() = %d, %v; want 1", count, err)
	}

	deleted, err := repo.DeleteAll()
	if err != nil || deleted != 1 {
		t.Errorf("DeleteAll() = %d, %v; want 1", deleted, err)
	}
	if count, _ := repo.Count(); count != 0 {
		t.Errorf("Count() after DeleteAll = %d", count)
	}
}
