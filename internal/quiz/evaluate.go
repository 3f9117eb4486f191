package quiz

import "strings"

var punctuationStripper = strings.NewReplacer(".", "", ",", "", "?", "", "!", "")

// Tokenize splits a sentence into words on runs of whitespace, dropping empty tokens
func Tokenize(sentence string) []string {
	return strings.Fields(sentence)
}

// Normalize prepares a sentence for comparison: punctuation (. , ? !) removed,
// lower-cased, trimmed and with internal whitespace collapsed to single spaces.
func Normalize(s string) string {
	s = punctuationStripper.Replace(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// Evaluation is the verdict for one check of an answer sequence. Words holds the
// answer as it was checked; PerWord[i] is the mark for Words[i].
type Evaluation struct {
	Correct bool     `json:"correct"`
	Words   []string `json:"words"`
	PerWord []bool   `json:"per_word_correct"`

	NormalizedAnswer string `json:"-"`
	NormalizedTarget string `json:"-"`
}

// Evaluate compares the learner's words against the canonical target sentence.
//
// On a mismatch PerWord marks, for each answer slot, whether the word literally equals
// the canonical token at the same position. No anagram matching is attempted. On a match
// every slot is reported correct.
func Evaluate(answer []string, target string) Evaluation {
	ev := Evaluation{
		NormalizedAnswer: Normalize(strings.Join(answer, " ")),
		NormalizedTarget: Normalize(target),
		Words:            make([]string, len(answer)),
		PerWord:          make([]bool, len(answer)),
	}
	copy(ev.Words, answer)
	ev.Correct = ev.NormalizedAnswer == ev.NormalizedTarget

	if ev.Correct {
		for i := range ev.PerWord {
			ev.PerWord[i] = true
		}
		return ev
	}

	canonical := Tokenize(target)
	for i, word := range answer {
		ev.PerWord[i] = i < len(canonical) && word == canonical[i]
	}
	return ev
}
