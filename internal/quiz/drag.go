package quiz

import "fmt"

// Point is a position in client coordinates
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns p - o
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Add returns p + o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// DropPolicy decides what happens when a gesture ends outside both containers
type DropPolicy int

const (
	// DropOutsideStays leaves the token where it was (pointer drag)
	DropOutsideStays DropPolicy = iota
	// DropOutsideToPool sends the token back to the pool (touch drag)
	DropOutsideToPool
)

// Drag is the in-flight gesture
type Drag struct {
	TokenID  int
	Source   Zone
	Offset   Point // contact point relative to the token's top-left corner
	Position Point // token top-left, following the contact point
	Hover    Zone
	Policy   DropPolicy
}

// Move describes a completed gesture
type Move struct {
	TokenID int  `json:"token_id"`
	From    Zone `json:"from"`
	To      Zone `json:"to"`
	Moved   bool `json:"moved"`
}

// DragController owns the single active gesture of a question and turns it into
// container moves. It knows nothing about where the gesture came from.
type DragController struct {
	question *Question
	active   *Drag
}

// NewDragController binds a controller to a question
func NewDragController(q *Question) *DragController {
	return &DragController{question: q}
}

// Active returns a copy of the in-flight gesture, if any
func (c *DragController) Active() (Drag, bool) {
	if c.active == nil {
		return Drag{}, false
	}
	return *c.active, true
}

// Begin starts a gesture on a token. grab is the contact point and origin the token's
// top-left corner at that moment; both may be zero for sources without coordinates.
func (c *DragController) Begin(tokenID int, grab, origin Point, policy DropPolicy) error {
	if c.active != nil {
		return ErrGestureActive
	}
	zone, _, ok := c.question.Locate(tokenID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownToken, tokenID)
	}
	c.active = &Drag{
		TokenID:  tokenID,
		Source:   zone,
		Offset:   grab.Sub(origin),
		Position: origin,
		Policy:   policy,
	}
	return nil
}

// Update moves the dragged token with the contact point and records the hovered zone
func (c *DragController) Update(at Point, hover Zone) error {
	if c.active == nil {
		return ErrNoGesture
	}
	c.active.Position = at.Sub(c.active.Offset)
	c.active.Hover = hover
	return nil
}

// Complete ends the gesture, appending the token to target. ZoneNone is resolved
// through the gesture's DropPolicy.
func (c *DragController) Complete(target Zone) (Move, error) {
	if c.active == nil {
		return Move{}, ErrNoGesture
	}
	drag := *c.active
	c.active = nil

	if target == ZoneNone && drag.Policy == DropOutsideToPool {
		target = ZonePool
	}
	mv := Move{TokenID: drag.TokenID, From: drag.Source, To: drag.Source}
	if target == ZoneNone {
		return mv, nil
	}
	if err := c.question.Move(drag.TokenID, target); err != nil {
		return mv, err
	}
	mv.To = target
	mv.Moved = true
	return mv, nil
}

// Cancel drops the active gesture without moving anything
func (c *DragController) Cancel() {
	c.active = nil
}
