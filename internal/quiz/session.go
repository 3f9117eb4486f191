package quiz

import (
	"fmt"

	"sentenceclash/internal/models"
)

// DefaultSessionSize is the number of questions drawn per play-through
const DefaultSessionSize = 8

// State is the lifecycle stage of a session
type State int

const (
	NotStarted State = iota
	InProgress
	Finished
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Finished:
		return "finished"
	default:
		return "not_started"
	}
}

// MarshalText encodes the state by name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Score is the running first-try tally
type Score struct {
	CorrectFirstTry    int `json:"correct_first_try"`
	QuestionsAttempted int `json:"questions_attempted"`
}

// Session is one play-through: a random draw of pairs visited in order, the current
// question and the score. A Session is not safe for concurrent use.
type Session struct {
	size     int
	shuffler Shuffler

	state    State
	pairs    []models.SentencePair
	index    int
	correct  int
	question *Question
	drag     *DragController
}

// NewSession creates a session in the NotStarted state. size <= 0 means DefaultSessionSize.
func NewSession(size int, s Shuffler) *Session {
	if size <= 0 {
		size = DefaultSessionSize
	}
	if s == nil {
		s = NewShuffler()
	}
	return &Session{size: size, shuffler: s}
}

// Start draws a fresh set of questions from allPairs and begins the first one.
// It may be called again at any time to restart.
func (s *Session) Start(allPairs []models.SentencePair) error {
	if len(allPairs) == 0 {
		return ErrEmptyData
	}

	drawn := shuffled(s.shuffler, allPairs)
	if len(drawn) > s.size {
		drawn = drawn[:s.size]
	}

	s.pairs = drawn
	s.index = 0
	s.correct = 0
	s.state = InProgress
	s.beginQuestion()
	return nil
}

func (s *Session) beginQuestion() {
	s.question = NewQuestion(s.pairs[s.index], s.shuffler)
	s.drag = NewDragController(s.question)
}

// Advance moves on to the next question, finishing the session after the last one.
// It is only allowed once the current question has been answered correctly.
func (s *Session) Advance() error {
	if s.state != InProgress {
		return ErrNotInProgress
	}
	if !s.question.Controls().CanAdvance {
		return ErrActionDisabled
	}

	s.index++
	if s.index >= len(s.pairs) {
		s.state = Finished
		s.question = nil
		s.drag = nil
		return nil
	}
	s.beginQuestion()
	return nil
}

// Check evaluates the current answer sequence and records the attempt
func (s *Session) Check() (Evaluation, error) {
	if s.state != InProgress {
		return Evaluation{}, ErrNotInProgress
	}
	q := s.question
	if !q.Controls().CanCheck {
		return Evaluation{}, ErrActionDisabled
	}

	ev := Evaluate(q.AnswerWords(), q.Pair.Target)
	q.Attempts++
	q.Last = &ev
	if ev.Correct {
		q.Solved = true
		if q.Attempts == 1 {
			s.correct++
		}
	}
	return ev, nil
}

// CurrentPair returns the pair being asked. Callers must check Finished first.
func (s *Session) CurrentPair() (models.SentencePair, error) {
	if s.state != InProgress {
		return models.SentencePair{}, fmt.Errorf("%w (index %d of %d)", ErrOutOfRange, s.index, len(s.pairs))
	}
	return s.pairs[s.index], nil
}

// Question returns the current question, or nil outside InProgress
func (s *Session) Question() *Question {
	return s.question
}

// Drag returns the gesture controller of the current question, or nil outside InProgress
func (s *Session) Drag() *DragController {
	return s.drag
}

func (s *Session) State() State { return s.state }
func (s *Session) Index() int   { return s.index }
func (s *Session) Len() int     { return len(s.pairs) }

// Pairs returns a copy of the drawn question set
func (s *Session) Pairs() []models.SentencePair {
	out := make([]models.SentencePair, len(s.pairs))
	copy(out, s.pairs)
	return out
}

// Score returns the first-try tally. QuestionsAttempted counts the current question.
func (s *Session) Score() Score {
	attempted := s.index + 1
	if attempted > len(s.pairs) {
		attempted = len(s.pairs)
	}
	return Score{CorrectFirstTry: s.correct, QuestionsAttempted: attempted}
}

// LiveAccuracy is the rounded running accuracy for display during play
func (s *Session) LiveAccuracy() int {
	if s.state == NotStarted {
		return 0
	}
	return LiveAccuracy(s.correct, s.Score().QuestionsAttempted-1)
}

// Result summarizes a finished session
func (s *Session) Result() (Result, error) {
	if s.state != Finished {
		return Result{}, ErrNotFinished
	}
	return Summarize(s.correct, len(s.pairs)), nil
}
