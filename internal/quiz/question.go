package quiz

import (
	"fmt"

	"sentenceclash/internal/models"
)

// Zone identifies a token container
type Zone int

const (
	ZoneNone Zone = iota
	ZonePool
	ZoneAnswer
)

func (z Zone) String() string {
	switch z {
	case ZonePool:
		return "pool"
	case ZoneAnswer:
		return "answer"
	default:
		return "none"
	}
}

// MarshalText encodes the zone by name
func (z Zone) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// ParseZone maps a client zone name to a Zone. The empty string means outside both zones.
func ParseZone(name string) (Zone, error) {
	switch name {
	case "pool", "word-bank":
		return ZonePool, nil
	case "answer", "answer-zone":
		return ZoneAnswer, nil
	case "", "none":
		return ZoneNone, nil
	default:
		return ZoneNone, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
}

// Token is one draggable word. ID is the word's index in the canonical tokenization
// and stays with the token for the life of the question.
type Token struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Controls says which of the two question actions is currently offered
type Controls struct {
	CanCheck   bool `json:"can_check"`
	CanAdvance bool `json:"can_advance"`
}

// Question is the per-question state: the shuffled pool, the learner's answer
// sequence and the attempt bookkeeping.
type Question struct {
	Pair     models.SentencePair
	Pool     []Token
	Answer   []Token
	Attempts int
	Solved   bool
	Last     *Evaluation
}

// NewQuestion tokenizes the pair's target sentence and shuffles the words into the pool
func NewQuestion(pair models.SentencePair, s Shuffler) *Question {
	words := Tokenize(pair.Target)
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = Token{ID: i, Text: w}
	}
	return &Question{
		Pair:   pair,
		Pool:   shuffled(s, tokens),
		Answer: []Token{},
	}
}

// Controls returns the enabled actions: check until solved, then advance
func (q *Question) Controls() Controls {
	return Controls{CanCheck: !q.Solved, CanAdvance: q.Solved}
}

// AnswerWords returns the answer sequence as plain words
func (q *Question) AnswerWords() []string {
	words := make([]string, len(q.Answer))
	for i, t := range q.Answer {
		words[i] = t.Text
	}
	return words
}

// Locate finds which container holds the token and at which position
func (q *Question) Locate(tokenID int) (Zone, int, bool) {
	for i, t := range q.Pool {
		if t.ID == tokenID {
			return ZonePool, i, true
		}
	}
	for i, t := range q.Answer {
		if t.ID == tokenID {
			return ZoneAnswer, i, true
		}
	}
	return ZoneNone, -1, false
}

// Move takes the token out of its container and appends it to the end of target.
// Order in the other container is untouched.
func (q *Question) Move(tokenID int, target Zone) error {
	if target != ZonePool && target != ZoneAnswer {
		return fmt.Errorf("%w: %s", ErrUnknownZone, target)
	}
	from, idx, ok := q.Locate(tokenID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownToken, tokenID)
	}

	src := q.container(from)
	token := (*src)[idx]
	*src = append((*src)[:idx:idx], (*src)[idx+1:]...)

	dst := q.container(target)
	*dst = append(*dst, token)
	return nil
}

func (q *Question) container(z Zone) *[]Token {
	if z == ZoneAnswer {
		return &q.Answer
	}
	return &q.Pool
}
