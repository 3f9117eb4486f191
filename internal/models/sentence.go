package models

import "time"

// SentencePair is one quiz record: a prompt sentence and its canonical translation
type SentencePair struct {
	ID        int64     `json:"id,omitempty" yaml:"id,omitempty"`
	Source    string    `json:"ja" yaml:"ja"`
	Target    string    `json:"en" yaml:"en"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"-"`
}

// SentencePairStats summarizes the stored data set
type SentencePairStats struct {
	TotalPairs   int
	TotalTokens  int
	LongestWords int
}
