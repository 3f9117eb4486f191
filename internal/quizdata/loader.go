// Package quizdata reads and validates sentence pair collections.
//
// Files are a list of records with a Japanese prompt and its English answer:
//
//	[{"ja": "猫です。", "en": "It is a cat."}]
//
// YAML files with the same keys are accepted as well. "source" and "target" may be used
// in place of "ja" and "en".
package quizdata

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"sentenceclash/internal/models"
)

//go:embed data/quiz_data.json
var defaultData embed.FS

// Format is the encoding of a quiz data file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from a file extension, defaulting to JSON
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// record accepts both key spellings
type record struct {
	JA     string `json:"ja" yaml:"ja"`
	EN     string `json:"en" yaml:"en"`
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

func (r record) pair() models.SentencePair {
	p := models.SentencePair{Source: r.JA, Target: r.EN}
	if p.Source == "" {
		p.Source = r.Source
	}
	if p.Target == "" {
		p.Target = r.Target
	}
	return p
}

// Load decodes and validates a collection of sentence pairs
func Load(r io.Reader, format Format) ([]models.SentencePair, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read quiz data: %w", err)
	}

	var records []record
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &records)
	default:
		err = json.Unmarshal(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), &records)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse quiz data: %w", err)
	}

	pairs := make([]models.SentencePair, len(records))
	for i, rec := range records {
		pairs[i] = rec.pair()
	}
	if err := Validate(pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

// LoadFile loads a quiz data file, choosing the format by extension
func LoadFile(path string) ([]models.SentencePair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open quiz data %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, FormatForPath(path))
}

// Default returns the embedded data set
func Default() ([]models.SentencePair, error) {
	f, err := defaultData.Open("data/quiz_data.json")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, FormatJSON)
}

// LoadSource loads path when set, the embedded data set otherwise
func LoadSource(path string) ([]models.SentencePair, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

type entry struct {
	JA string `json:"ja" yaml:"ja"`
	EN string `json:"en" yaml:"en"`
}

// Write encodes pairs in the same shape Load reads
func Write(w io.Writer, pairs []models.SentencePair, format Format) error {
	entries := make([]entry, len(pairs))
	for i, p := range pairs {
		entries[i] = entry{JA: p.Source, EN: p.Target}
	}

	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("failed to encode quiz data: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode quiz data: %w", err)
	}
	return nil
}
