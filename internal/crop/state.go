// Package crop holds the editor state for the image cropper: the crop
// rectangle, the active drag gesture and the last applied result, plus the
// coordinate transforms between displayed and natural pixel space.
package crop

// Listener receives a snapshot after every notifying mutation.
type Listener func(Snapshot)

type subscription struct {
	id int
	fn Listener
}

// State is the cropper's editor state. It is created when the editor is
// mounted, reset by Load and torn down with Close.
//
// State is not safe for concurrent use: every call, including listener
// callbacks, runs on the UI goroutine and completes before the next event.
type State struct {
	img    *Image
	rect   Rect
	drag   DragSession
	result *Result

	listeners []subscription
	nextID    int
	closed    bool
}

// NewState creates an empty state with no image loaded.
func NewState() *State {
	return &State{}
}

// Subscribe registers fn and returns a function that removes it.
// Listeners run synchronously in registration order.
func (s *State) Subscribe(fn Listener) (cancel func()) {
	if s.closed || fn == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Close drops all listeners. Every mutator is a no-op afterwards.
func (s *State) Close() {
	s.closed = true
	s.listeners = nil
	s.drag = DragSession{}
}

// Load installs a freshly decoded image. The previous result is discarded
// and the rectangle goes back to zero. A nil image changes nothing.
func (s *State) Load(img *Image) {
	if s.closed || img == nil {
		return
	}
	s.img = img
	s.result = nil
	s.rect = Rect{}
	s.notify(ChangeLoad)
}

// BeginDrag starts a gesture anchored at p and collapses the rectangle onto it.
// It does nothing until an image is loaded.
func (s *State) BeginDrag(p Point) {
	if s.closed || s.img == nil {
		return
	}
	s.drag = DragSession{Active: true, Anchor: p}
	s.rect = Rect{X: p.X, Y: p.Y}
	s.notify(ChangeRect)
}

// UpdateDrag stretches the rectangle from the anchor to raw, after clamping
// raw into the displayed image. This is the only place bounds are enforced.
func (s *State) UpdateDrag(raw Point, displayed Size) {
	if s.closed || !s.drag.Active || s.img == nil {
		return
	}
	p := ClampPoint(raw, displayed)
	s.rect = RectFromDrag(s.drag.Anchor, p)
	s.notify(ChangeRect)
}

// EndDrag finishes the current gesture. Calling it without a gesture is fine.
func (s *State) EndDrag() {
	s.drag.Active = false
}

// SetField writes one rectangle field from user text. Unparseable text
// becomes 0. The value is not checked against the image bounds or the other
// fields. Unknown field names are ignored.
func (s *State) SetField(name, raw string) {
	if s.closed {
		return
	}
	v := ParseInt(raw)
	switch name {
	case FieldX:
		s.rect.X = v
	case FieldY:
		s.rect.Y = v
	case FieldWidth:
		s.rect.Width = v
	case FieldHeight:
		s.rect.Height = v
	default:
		return
	}
	s.notify(ChangeRect)
}

// Apply turns the current rectangle into a Result. It requires a loaded image
// and a rectangle with positive width and height; otherwise it returns false
// and keeps any earlier result.
func (s *State) Apply() (Result, bool) {
	if s.closed || s.img == nil || s.rect.Width <= 0 || s.rect.Height <= 0 {
		return Result{}, false
	}
	r := NewResult(s.img.Meta, s.rect)
	s.result = &r
	s.notify(ChangeResult)
	return r, true
}

// Rect returns the current crop rectangle.
func (s *State) Rect() Rect { return s.rect }

// Drag returns the current drag session.
func (s *State) Drag() DragSession { return s.drag }

// Image returns the loaded image, or nil.
func (s *State) Image() *Image { return s.img }

// Loaded reports whether an image has been loaded.
func (s *State) Loaded() bool { return s.img != nil }

// Result returns the last applied result, or nil.
func (s *State) Result() *Result {
	if s.result == nil {
		return nil
	}
	r := *s.result
	return &r
}

// Snapshot returns the current state tagged with change c.
func (s *State) Snapshot(c Change) Snapshot {
	return Snapshot{
		Change: c,
		Rect:   s.rect,
		Drag:   s.drag,
		Image:  s.img,
		Result: s.Result(),
	}
}

func (s *State) notify(c Change) {
	if len(s.listeners) == 0 {
		return
	}
	snap := s.Snapshot(c)
	// Copy so a listener may unsubscribe while being called.
	subs := append([]subscription(nil), s.listeners...)
	for _, sub := range subs {
		sub.fn(snap)
	}
}
