package layout

import (
	"time"

	"github.com/matzehuels/gridsnap/pkg/grid"
	"github.com/matzehuels/gridsnap/pkg/observability"
)

// Mode is the interaction state of a [Unit].
type Mode int

const (
	ModeDisplay Mode = iota
	ModeMove
	ModeResize
)

func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModeResize:
		return "resize"
	default:
		return "display"
	}
}

// Unit is a single rectangle inside a container together with its drag
// session state.
//
// A unit starts in ModeDisplay. A move session begins on StartMove, a resize
// session on StartResize; Drag updates the geometry while a session is
// active and Release ends it, publishing EventMoveEnded or EventResizeEnded.
// Destroy may be called in any mode and abandons a live session without an
// ended notification.
type Unit struct {
	id        string
	elementID string
	rect      grid.Rect
	opts      UnitOptions
	mode      Mode

	// dragOffset is only meaningful while mode != ModeDisplay.
	dragOffset grid.Point
	started    time.Time

	// offset is the owning manager's container offset. The unit reads it
	// and never writes it.
	offset *grid.Point

	container *Container
	renderer  Renderer
	events    Bus

	attached  bool
	destroyed bool
	unbind    func()
}

func newUnit(id, elementID string, rect grid.Rect, opts UnitOptions, offset *grid.Point, c *Container, r Renderer) *Unit {
	u := &Unit{
		id:        id,
		elementID: elementID,
		rect:      rect,
		opts:      opts,
		offset:    offset,
		container: c,
		renderer:  r,
	}
	r.Create(Element{ID: elementID, Rect: rect})
	return u
}

// ID returns the unit's identifier.
func (u *Unit) ID() string { return u.id }

// ElementID returns the identifier of the unit's visual element.
func (u *Unit) ElementID() string { return u.elementID }

// Rect returns a copy of the current geometry.
func (u *Unit) Rect() grid.Rect { return u.rect }

// Mode returns the current interaction state.
func (u *Unit) Mode() Mode { return u.mode }

// Options returns the unit's snap interval and size limits.
func (u *Unit) Options() UnitOptions { return u.opts }

// Attached reports whether the unit's interaction controls are active.
func (u *Unit) Attached() bool { return u.attached }

// Destroyed reports whether Destroy has been called.
func (u *Unit) Destroyed() bool { return u.destroyed }

// Subscribe registers o for the unit's notifications.
func (u *Unit) Subscribe(o Observer) (unsubscribe func()) { return u.events.Subscribe(o) }

// Attach binds the unit's pointer targets and shows its controls.
func (u *Unit) Attach() {
	if u.attached || u.destroyed {
		return
	}
	u.container.bindUnit(u.id, unitBinding{
		owner:       u,
		startMove:   u.StartMove,
		startResize: u.StartResize,
		remove:      u.Destroy,
	})
	u.renderer.Attach(u.elementID)
	u.attached = true
}

// Detach unbinds the unit's pointer targets and hides its controls. A live
// session is left running and still ends on Release.
func (u *Unit) Detach() {
	if !u.attached {
		return
	}
	u.container.unbindUnit(u.id, u)
	u.renderer.Detach(u.elementID)
	u.attached = false
}

// StartMove begins a move session for a pointer at page. The drag offset is
// the snapped pointer minus the snapped rectangle position, both rounded
// down. It reports false if the unit is not in display mode or another
// session holds the container.
func (u *Unit) StartMove(page grid.Point) bool {
	if !u.canStart() {
		return false
	}
	pointer := grid.Snap(page, u.opts.Snap, false)
	corner := grid.Snap(u.rect.Position(), u.opts.Snap, false)
	return u.begin(ModeMove, pointer.Sub(corner))
}

// StartResize begins a resize session. The drag offset is the snapped
// rectangle position, since resizing grows the rectangle from its own
// top-left corner.
func (u *Unit) StartResize() bool {
	if !u.canStart() {
		return false
	}
	return u.begin(ModeResize, grid.Snap(u.rect.Position(), u.opts.Snap, false))
}

func (u *Unit) canStart() bool {
	return !u.destroyed && u.mode == ModeDisplay
}

func (u *Unit) begin(mode Mode, dragOffset grid.Point) bool {
	unbind, ok := u.container.bindSession(u.id, u.Drag, u.Release)
	if !ok {
		return false
	}
	u.unbind = unbind
	u.dragOffset = dragOffset
	u.mode = mode
	u.started = time.Now()
	u.renderer.SetStyles(u.elementID, Styles{Rect: u.rect, Dragging: mode == ModeMove})
	observability.Session().OnSessionStart(u.id, mode.String())
	return true
}

// Drag applies a pointer position during a session.
//
// In a move session the pointer is snapped down, the drag offset removed,
// and each axis clamped to at least the snap interval; there is no upper
// bound. In a resize session the pointer is snapped up, the drag offset and
// the container offset removed, and each axis clamped to [MinSize, MaxSize].
// Move coordinates stay in page space relative to the captured offset while
// resize coordinates are made container-relative.
func (u *Unit) Drag(page grid.Point) {
	switch u.mode {
	case ModeMove:
		coords := grid.Snap(page, u.opts.Snap, false).Sub(u.dragOffset)
		u.rect.Left = grid.AtLeast(coords.X, u.opts.Snap)
		u.rect.Top = grid.AtLeast(coords.Y, u.opts.Snap)
	case ModeResize:
		coords := grid.Snap(page, u.opts.Snap, true).Sub(u.dragOffset)
		if u.offset != nil {
			coords = coords.Sub(*u.offset)
		}
		u.rect.Width = grid.Clamp(coords.X, u.opts.MinSize, u.opts.MaxSize)
		u.rect.Height = grid.Clamp(coords.Y, u.opts.MinSize, u.opts.MaxSize)
	default:
		return
	}
	u.renderer.SetStyles(u.elementID, Styles{Rect: u.rect, Dragging: u.mode == ModeMove})
}

// Release ends the active session and publishes the matching ended
// notification. It does nothing in display mode.
func (u *Unit) Release() {
	mode := u.mode
	if mode == ModeDisplay {
		return
	}
	u.endSession(false)
	switch mode {
	case ModeMove:
		u.events.Publish(Event{Kind: EventMoveEnded, Unit: u})
	case ModeResize:
		u.events.Publish(Event{Kind: EventResizeEnded, Unit: u})
	}
}

func (u *Unit) endSession(abandoned bool) {
	observability.Session().OnSessionEnd(u.id, u.mode.String(), time.Since(u.started), abandoned)
	u.mode = ModeDisplay
	u.dragOffset = grid.Point{}
	if u.unbind != nil {
		u.unbind()
		u.unbind = nil
	}
	if !abandoned {
		u.renderer.SetStyles(u.elementID, Styles{Rect: u.rect})
	}
}

// Destroy removes the unit's element and publishes EventDestroyed. A live
// session is torn down without an ended notification. Calling Destroy again
// has no effect.
func (u *Unit) Destroy() {
	if u.destroyed {
		return
	}
	if u.mode != ModeDisplay {
		u.endSession(true)
	}
	u.Detach()
	u.destroyed = true
	u.renderer.Destroy(u.elementID)
	u.events.Publish(Event{Kind: EventDestroyed, Unit: u})
}
