package layout

import "github.com/matzehuels/gridsnap/pkg/grid"

// Container routes pointer events to the units inside it. It holds the
// listener registrations the original display tree would hold: per-unit
// bindings while a unit is attached, the double-click-to-create binding
// while the manager is editable, and at most one session binding for the
// unit currently being moved or resized.
//
// A Container is not safe for concurrent use; callers serialize dispatch.
type Container struct {
	surface Surface
	units   map[string]unitBinding
	create  func(page grid.Point)
	session *sessionBinding
}

type unitBinding struct {
	owner       *Unit
	startMove   func(page grid.Point) bool
	startResize func() bool
	remove      func()
}

type sessionBinding struct {
	owner string
	move  func(page grid.Point)
	up    func()
}

// NewContainer returns a container whose page offset is read from s. A nil
// surface is treated as sitting at the page origin.
func NewContainer(s Surface) *Container {
	if s == nil {
		s = StaticSurface{}
	}
	return &Container{surface: s, units: make(map[string]unitBinding)}
}

// Offset queries the surface for the container's current page offset.
func (c *Container) Offset() grid.Point { return c.surface.Offset() }

// Session returns the id of the unit holding the session binding, or ""
// when no session is active.
func (c *Container) Session() string {
	if c.session == nil {
		return ""
	}
	return c.session.owner
}

// Dispatch routes ev and reports whether it was consumed.
//
// Move and up events reach only the active session. Down events start a
// session on an attached unit's body or resize control and are ignored
// while another session is active. Down on a remove control is swallowed so
// it never starts a drag, and down on the container background is swallowed
// while editable. A click on a remove control destroys the unit. Double
// clicks on the background create a unit while editable; double clicks on
// an attached unit are swallowed.
func (c *Container) Dispatch(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerMove:
		if c.session == nil {
			return false
		}
		c.session.move(ev.Page)
		return true

	case PointerUp:
		if c.session == nil {
			return false
		}
		c.session.up()
		return true

	case PointerDown:
		if c.session != nil {
			return false
		}
		if ev.Part == PartContainer {
			return c.create != nil
		}
		b, ok := c.units[ev.UnitID]
		if !ok {
			return false
		}
		switch ev.Part {
		case PartBody:
			return b.startMove(ev.Page)
		case PartResize:
			return b.startResize()
		case PartRemove:
			return true
		}
		return false

	case Click:
		if ev.Part != PartRemove {
			return false
		}
		b, ok := c.units[ev.UnitID]
		if !ok {
			return false
		}
		b.remove()
		return true

	case DoubleClick:
		if ev.Part != PartContainer {
			_, ok := c.units[ev.UnitID]
			return ok
		}
		if c.create == nil {
			return false
		}
		c.create(ev.Page)
		return true
	}
	return false
}

func (c *Container) bindUnit(id string, b unitBinding) { c.units[id] = b }

// unbindUnit removes id's binding if owner still holds it.
func (c *Container) unbindUnit(id string, owner *Unit) {
	if b, ok := c.units[id]; ok && b.owner == owner {
		delete(c.units, id)
	}
}

func (c *Container) bindCreate(fn func(page grid.Point)) { c.create = fn }

func (c *Container) unbindCreate() { c.create = nil }

// bindSession registers the move/up handlers of a new session. It fails if
// another session is bound. The returned unbind only removes this binding,
// so a stale unbind never tears down a later session.
func (c *Container) bindSession(owner string, move func(grid.Point), up func()) (unbind func(), ok bool) {
	if c.session != nil {
		return nil, false
	}
	s := &sessionBinding{owner: owner, move: move, up: up}
	c.session = s
	return func() {
		if c.session == s {
			c.session = nil
		}
	}, true
}
