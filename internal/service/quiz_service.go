package service

import (
	"errors"
	"fmt"
	"log"

	"sentenceclash/internal/models"
	"sentenceclash/internal/quiz"
)

// PairSource supplies the full collection a session draws its questions from
type PairSource interface {
	Pairs() ([]models.SentencePair, error)
}

// Snapshot is the player-visible state of a session after a transition
type Snapshot struct {
	State        quiz.State       `json:"state"`
	Index        int              `json:"index"`
	Total        int              `json:"total"`
	Prompt       string           `json:"prompt,omitempty"`
	Pool         []quiz.Token     `json:"pool"`
	Answer       []quiz.Token     `json:"answer"`
	Attempts     int              `json:"attempts"`
	Controls     quiz.Controls    `json:"controls"`
	Evaluation   *quiz.Evaluation `json:"evaluation,omitempty"`
	Score        quiz.Score       `json:"score"`
	LiveAccuracy int              `json:"live_accuracy"`
	Result       *quiz.Result     `json:"result,omitempty"`
}

// QuizService runs quiz sessions on behalf of players
type QuizService struct {
	source      PairSource
	store       *SessionStore
	size        int
	newShuffler func() quiz.Shuffler
	debug       bool
}

// NewQuizService creates a quiz service drawing size questions per session from source
func NewQuizService(source PairSource, store *SessionStore, size int, debug bool) *QuizService {
	return &QuizService{
		source:      source,
		store:       store,
		size:        size,
		newShuffler: quiz.NewShuffler,
		debug:       debug,
	}
}

// SetShufflerFactory replaces the randomness used for new sessions
func (s *QuizService) SetShufflerFactory(f func() quiz.Shuffler) {
	s.newShuffler = f
}

func (s *QuizService) newSession() *quiz.Session {
	return quiz.NewSession(s.size, s.newShuffler())
}

// withSession runs fn on the player's session while holding its lock
func (s *QuizService) withSession(playerID string, fn func(*quiz.Session) error) (*Snapshot, error) {
	e := s.store.acquire(playerID, s.newSession)
	defer e.mu.Unlock()

	if err := fn(e.session); err != nil {
		return nil, err
	}
	return snapshot(e.session), nil
}

// Start draws a new question set for the player, restarting any session in progress.
// A storage failure or an empty data set is reported as quiz.ErrEmptyData.
func (s *QuizService) Start(playerID string) (*Snapshot, error) {
	pairs, err := s.source.Pairs()
	if err != nil {
		log.Printf("Failed to load sentence pairs: %v", err)
		return nil, fmt.Errorf("%w: %v", quiz.ErrEmptyData, err)
	}

	return s.withSession(playerID, func(sess *quiz.Session) error {
		if err := sess.Start(pairs); err != nil {
			return err
		}
		if s.debug {
			log.Printf("[DEBUG] Player %s started a session of %d questions from %d pairs", playerID, sess.Len(), len(pairs))
		}
		return nil
	})
}

// State returns the player's current snapshot, NotStarted for a new player
func (s *QuizService) State(playerID string) (*Snapshot, error) {
	return s.withSession(playerID, func(*quiz.Session) error { return nil })
}

// ApplyGestures replays a batch of drag events against the current question.
// Moves applied before a failing event are kept.
func (s *QuizService) ApplyGestures(playerID string, batch GestureBatch) ([]quiz.Move, *Snapshot, error) {
	var moves []quiz.Move
	snap, err := s.withSession(playerID, func(sess *quiz.Session) error {
		if sess.State() != quiz.InProgress {
			return quiz.ErrNotInProgress
		}
		var err error
		moves, err = replayGestures(sess.Drag(), batch)
		return err
	})
	return moves, snap, err
}

// Move transfers one token to the end of a container, the tap-to-move path for
// clients without drag and drop
func (s *QuizService) Move(playerID string, tokenID int, to quiz.Zone) (*Snapshot, error) {
	return s.withSession(playerID, func(sess *quiz.Session) error {
		if sess.State() != quiz.InProgress {
			return quiz.ErrNotInProgress
		}
		drag := sess.Drag()
		drag.Cancel()

		a := quiz.NewPointerAdapter(drag)
		if err := a.DragStart(tokenID); err != nil {
			return err
		}
		_, err := a.Drop(to)
		return err
	})
}

// Check evaluates the player's answer sequence
func (s *QuizService) Check(playerID string) (*quiz.Evaluation, *Snapshot, error) {
	var ev quiz.Evaluation
	snap, err := s.withSession(playerID, func(sess *quiz.Session) error {
		var err error
		ev, err = sess.Check()
		if err != nil {
			return err
		}
		if s.debug {
			log.Printf("[DEBUG] Player %s answer %q target %q correct=%t", playerID, ev.NormalizedAnswer, ev.NormalizedTarget, ev.Correct)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &ev, snap, nil
}

// Advance moves the player to the next question or to the results
func (s *QuizService) Advance(playerID string) (*Snapshot, error) {
	return s.withSession(playerID, func(sess *quiz.Session) error {
		return sess.Advance()
	})
}

// Result returns the final result of a finished session
func (s *QuizService) Result(playerID string) (*quiz.Result, error) {
	var res quiz.Result
	_, err := s.withSession(playerID, func(sess *quiz.Session) error {
		var err error
		res, err = sess.Result()
		return err
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// IsClientError reports whether err was caused by the request rather than the server
func IsClientError(err error) bool {
	return errors.Is(err, quiz.ErrUnknownToken) ||
		errors.Is(err, quiz.ErrUnknownZone) ||
		errors.Is(err, ErrUnknownSource) ||
		errors.Is(err, ErrUnknownEvent) ||
		errors.Is(err, ErrMissingLayout)
}

func snapshot(sess *quiz.Session) *Snapshot {
	snap := &Snapshot{
		State:        sess.State(),
		Index:        sess.Index(),
		Total:        sess.Len(),
		Pool:         []quiz.Token{},
		Answer:       []quiz.Token{},
		LiveAccuracy: sess.LiveAccuracy(),
	}
	if sess.State() != quiz.NotStarted {
		snap.Score = sess.Score()
	}

	if q := sess.Question(); q != nil {
		snap.Prompt = q.Pair.Source
		snap.Pool = append(snap.Pool, q.Pool...)
		snap.Answer = append(snap.Answer, q.Answer...)
		snap.Attempts = q.Attempts
		snap.Controls = q.Controls()
		if q.Last != nil {
			ev := *q.Last
			snap.Evaluation = &ev
		}
	}

	if res, err := sess.Result(); err == nil {
		snap.Result = &res
	}
	return snap
}
