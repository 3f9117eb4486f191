package quiz

// Rect is an axis-aligned box in client coordinates
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Locator resolves a contact point to the container under it
type Locator interface {
	ZoneAt(p Point) Zone
}

// RectLocator hit-tests against the two container rectangles reported by the client.
// The answer area wins when the rectangles overlap.
type RectLocator struct {
	Pool   Rect `json:"pool"`
	Answer Rect `json:"answer"`
}

func (l RectLocator) ZoneAt(p Point) Zone {
	switch {
	case l.Answer.Contains(p):
		return ZoneAnswer
	case l.Pool.Contains(p):
		return ZonePool
	default:
		return ZoneNone
	}
}

// PointerAdapter translates mouse drag-and-drop events into controller calls.
// A drop outside both containers leaves the token where it was.
type PointerAdapter struct {
	c *DragController
}

func NewPointerAdapter(c *DragController) *PointerAdapter {
	return &PointerAdapter{c: c}
}

// DragStart marks the token as the active one
func (a *PointerAdapter) DragStart(tokenID int) error {
	return a.c.Begin(tokenID, Point{}, Point{}, DropOutsideStays)
}

// DragEnter highlights the zone the pointer entered
func (a *PointerAdapter) DragEnter(zone Zone) error {
	drag, ok := a.c.Active()
	if !ok {
		return ErrNoGesture
	}
	return a.c.Update(drag.Position.Add(drag.Offset), zone)
}

// DragLeave removes the highlight from a zone the pointer left
func (a *PointerAdapter) DragLeave(zone Zone) error {
	drag, ok := a.c.Active()
	if !ok {
		return ErrNoGesture
	}
	if drag.Hover != zone {
		return nil
	}
	return a.c.Update(drag.Position.Add(drag.Offset), ZoneNone)
}

// Drop completes the move into zone
func (a *PointerAdapter) Drop(zone Zone) (Move, error) {
	return a.c.Complete(zone)
}

// DragEnd finishes a gesture that was released without a drop
func (a *PointerAdapter) DragEnd() (Move, error) {
	if _, ok := a.c.Active(); !ok {
		return Move{}, nil
	}
	return a.c.Complete(ZoneNone)
}

// TouchAdapter translates touch events into controller calls, hit-testing contact
// points through a Locator. A release outside both containers returns the token to
// the pool rather than to its original container.
type TouchAdapter struct {
	c   *DragController
	loc Locator
}

func NewTouchAdapter(c *DragController, loc Locator) *TouchAdapter {
	return &TouchAdapter{c: c, loc: loc}
}

// TouchStart begins dragging the token; origin is the token's top-left corner
func (a *TouchAdapter) TouchStart(tokenID int, at, origin Point) error {
	return a.c.Begin(tokenID, at, origin, DropOutsideToPool)
}

// TouchMove makes the token follow the contact point and highlights the zone under it
func (a *TouchAdapter) TouchMove(at Point) error {
	return a.c.Update(at, a.loc.ZoneAt(at))
}

// TouchEnd drops the token into whichever zone contains the release point
func (a *TouchAdapter) TouchEnd(at Point) (Move, error) {
	if _, ok := a.c.Active(); !ok {
		return Move{}, ErrNoGesture
	}
	return a.c.Complete(a.loc.ZoneAt(at))
}
