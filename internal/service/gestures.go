package service

import (
	"errors"
	"fmt"

	"sentenceclash/internal/quiz"
)

// Gesture sources
const (
	SourcePointer = "pointer"
	SourceTouch   = "touch"
)

var (
	// ErrUnknownSource is returned for a batch that is neither pointer nor touch
	ErrUnknownSource = errors.New("unknown gesture source")
	// ErrUnknownEvent is returned for an event type the source does not produce
	ErrUnknownEvent = errors.New("unknown gesture event")
	// ErrMissingLayout is returned for touch batches without container rectangles
	ErrMissingLayout = errors.New("touch gestures need a layout")
)

// GestureEvent is one browser event. Pointer events use start, enter, leave, drop and
// end; touch events use start, move and end with client coordinates.
type GestureEvent struct {
	Type    string  `json:"type"`
	TokenID int     `json:"token_id"`
	Zone    string  `json:"zone,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	TokenX  float64 `json:"token_x"`
	TokenY  float64 `json:"token_y"`
}

func (e GestureEvent) point() quiz.Point {
	return quiz.Point{X: e.X, Y: e.Y}
}

// GestureBatch is the sequence of events collected by the page since its last request
type GestureBatch struct {
	Source string            `json:"source"`
	Layout *quiz.RectLocator `json:"layout,omitempty"`
	Events []GestureEvent    `json:"events"`
}

// replayGestures feeds the batch through the matching adapter and returns the moves
// that changed a container. Events that arrive while no gesture is in flight, or a
// second start during a gesture, are ignored. A gesture never outlives its batch.
func replayGestures(c *quiz.DragController, batch GestureBatch) ([]quiz.Move, error) {
	c.Cancel()
	defer c.Cancel()

	var apply func(GestureEvent) (quiz.Move, error)

	switch batch.Source {
	case SourcePointer:
		a := quiz.NewPointerAdapter(c)
		apply = func(ev GestureEvent) (quiz.Move, error) { return pointerEvent(a, ev) }
	case SourceTouch:
		if batch.Layout == nil {
			return nil, ErrMissingLayout
		}
		a := quiz.NewTouchAdapter(c, *batch.Layout)
		apply = func(ev GestureEvent) (quiz.Move, error) { return touchEvent(a, ev) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, batch.Source)
	}

	moves := []quiz.Move{}
	for i, ev := range batch.Events {
		move, err := apply(ev)
		if errors.Is(err, quiz.ErrGestureActive) || errors.Is(err, quiz.ErrNoGesture) {
			continue
		}
		if err != nil {
			return moves, fmt.Errorf("event %d (%s): %w", i, ev.Type, err)
		}
		if move.Moved {
			moves = append(moves, move)
		}
	}
	return moves, nil
}

func pointerEvent(a *quiz.PointerAdapter, ev GestureEvent) (quiz.Move, error) {
	if ev.Type == "start" {
		return quiz.Move{}, a.DragStart(ev.TokenID)
	}
	if ev.Type == "end" {
		return a.DragEnd()
	}

	zone, err := quiz.ParseZone(ev.Zone)
	if err != nil {
		return quiz.Move{}, err
	}
	switch ev.Type {
	case "enter":
		return quiz.Move{}, a.DragEnter(zone)
	case "leave":
		return quiz.Move{}, a.DragLeave(zone)
	case "drop":
		return a.Drop(zone)
	}
	return quiz.Move{}, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
}

func touchEvent(a *quiz.TouchAdapter, ev GestureEvent) (quiz.Move, error) {
	switch ev.Type {
	case "start":
		return quiz.Move{}, a.TouchStart(ev.TokenID, ev.point(), quiz.Point{X: ev.TokenX, Y: ev.TokenY})
	case "move":
		return quiz.Move{}, a.TouchMove(ev.point())
	case "end":
		return a.TouchEnd(ev.point())
	}
	return quiz.Move{}, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
}
