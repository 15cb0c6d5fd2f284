package layout

import (
	"time"

	"github.com/matzehuels/gridsnap/pkg/errors"
	"github.com/matzehuels/gridsnap/pkg/grid"
	"github.com/matzehuels/gridsnap/pkg/observability"
)

// Manager owns the units of one container. It creates and destroys units,
// toggles between editable and static mode, handles double-click-to-create
// and converts the unit collection to and from a [Snapshot].
//
// Mutating methods return the manager so calls can be chained. A Manager is
// not safe for concurrent use.
type Manager struct {
	opts      Options
	container *Container
	renderer  Renderer
	events    Bus

	units    []*Unit
	editable bool

	// offset is shared by pointer with every unit and updated in place.
	offset *grid.Point
}

// NewManager creates a manager for the container behind surface. A nil
// renderer discards all rendering calls. Zero option fields take the
// package defaults.
func NewManager(surface Surface, renderer Renderer, opts Options) (*Manager, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if renderer == nil {
		renderer = NopRenderer{}
	}
	m := &Manager{
		opts:      opts,
		container: NewContainer(surface),
		renderer:  renderer,
		offset:    &grid.Point{},
	}
	m.UpdateContainerOffset()
	return m, nil
}

// Options returns the manager's configuration.
func (m *Manager) Options() Options { return m.opts }

// Container returns the container that routes pointer events to units.
func (m *Manager) Container() *Container { return m.container }

// Dispatch forwards a pointer event to the container.
func (m *Manager) Dispatch(ev PointerEvent) bool { return m.container.Dispatch(ev) }

// Subscribe registers o for the manager's notifications.
func (m *Manager) Subscribe(o Observer) (unsubscribe func()) { return m.events.Subscribe(o) }

// Editable reports whether interaction is enabled.
func (m *Manager) Editable() bool { return m.editable }

// Len returns the number of units.
func (m *Manager) Len() int { return len(m.units) }

// Units returns the units in creation order. The slice is a copy.
func (m *Manager) Units() []*Unit {
	out := make([]*Unit, len(m.units))
	copy(out, m.units)
	return out
}

// ContainerOffset returns the most recently cached container offset.
func (m *Manager) ContainerOffset() grid.Point { return *m.offset }

// UpdateContainerOffset re-reads the container's page offset. Units observe
// the new value immediately. Calling it after the container scrolls or moves
// keeps resize math accurate.
func (m *Manager) UpdateContainerOffset() *Manager {
	*m.offset = m.container.Offset()
	return m
}

// GetUnit returns the first unit with the given id, or nil.
func (m *Manager) GetUnit(id string) *Unit {
	for _, u := range m.units {
		if u.id == id {
			return u
		}
	}
	return nil
}

// SetEditable enables or disables interaction. Enabling attaches every unit
// and starts listening for double-click-to-create on the container;
// disabling detaches both. Requesting the current state does nothing.
func (m *Manager) SetEditable(enabled bool) *Manager {
	if enabled == m.editable {
		return m
	}
	if enabled {
		m.container.bindCreate(func(page grid.Point) { m.HandleDoubleClick(page) })
		for _, u := range m.units {
			u.Attach()
		}
	} else {
		m.container.unbindCreate()
		for _, u := range m.units {
			u.Detach()
		}
	}
	m.editable = enabled
	return m
}

// AddUnit creates a unit from spec, appends it and publishes
// EventUnitAdded. The unit is attached immediately when the manager is
// editable. A spec that [Manager.Add] rejects adds nothing.
func (m *Manager) AddUnit(spec UnitSpec) *Manager {
	m.Add(spec)
	return m
}

// Add is AddUnit returning the new unit. It fails with INVALID_ARGUMENT
// when the id is already taken or the merged size limits are inconsistent,
// leaving the layout unchanged.
func (m *Manager) Add(spec UnitSpec) (*Unit, error) {
	if spec.ID != "" && m.GetUnit(spec.ID) != nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "unit %q already exists", spec.ID)
	}
	opts := m.unitOptions(spec)
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidArgument, err, "unit %q", spec.ID)
	}
	return m.addUnit(spec, opts), nil
}

// unitOptions merges the overrides in spec over the manager's options.
func (m *Manager) unitOptions(spec UnitSpec) UnitOptions {
	opts := UnitOptions{Snap: m.opts.Snap, MinSize: m.opts.MinSize, MaxSize: m.opts.MaxSize}
	if spec.Snap > 0 {
		opts.Snap = spec.Snap
	}
	if spec.MinSize > 0 {
		opts.MinSize = spec.MinSize
	}
	if spec.MaxSize > 0 {
		opts.MaxSize = spec.MaxSize
	}
	return opts
}

func (m *Manager) addUnit(spec UnitSpec, opts UnitOptions) *Unit {
	rect := spec.Rect
	if rect.Width == 0 {
		rect.Width = opts.MinSize
	}
	if rect.Height == 0 {
		rect.Height = opts.MinSize
	}

	id := spec.ID
	if id == "" {
		id = m.opts.NewID()
	}

	u := newUnit(id, m.opts.IDPrefix+id, rect, opts, m.offset, m.container, m.renderer)
	u.Subscribe(ObserverFunc(m.handleUnitEvent))
	if m.editable {
		u.Attach()
	}
	m.units = append(m.units, u)
	m.events.Publish(Event{Kind: EventUnitAdded, Unit: u, Manager: m})
	return u
}

// RemoveUnit drops u from the collection and publishes EventUnitRemoved.
// A unit that is not a member is ignored. It does not destroy the unit;
// Destroy calls RemoveUnit through the unit's EventDestroyed notification.
func (m *Manager) RemoveUnit(u *Unit) *Manager {
	for i, cur := range m.units {
		if cur == u {
			m.units = append(m.units[:i], m.units[i+1:]...)
			m.events.Publish(Event{Kind: EventUnitRemoved, Unit: u, Manager: m})
			return m
		}
	}
	return m
}

// ClearLayout destroys every unit and publishes EventLayoutCleared.
func (m *Manager) ClearLayout() *Manager {
	n := len(m.units)
	for len(m.units) > 0 {
		u := m.units[0]
		u.Destroy()
		// Destroy is a no-op on a unit that was already destroyed, so the
		// removal is repeated here to guarantee the loop terminates.
		m.RemoveUnit(u)
	}
	observability.Layout().OnClear(n)
	m.events.Publish(Event{Kind: EventLayoutCleared, Manager: m})
	return m
}

// LoadLayout replaces the current units with one unit per snapshot entry,
// in order, and publishes EventLayoutLoaded. A nil snapshot or one that
// repeats an id fails with INVALID_ARGUMENT before anything is changed.
func (m *Manager) LoadLayout(s Snapshot) error {
	start := time.Now()
	if s == nil {
		err := errors.New(errors.ErrCodeInvalidArgument, "not a valid layout: expected a list of units")
		observability.Layout().OnLoad(0, time.Since(start), err)
		return err
	}
	if err := s.CheckIDs(); err != nil {
		observability.Layout().OnLoad(0, time.Since(start), err)
		return err
	}
	m.ClearLayout()
	for _, e := range s {
		spec := UnitSpec{ID: e.ID, Rect: e.Coords}
		m.addUnit(spec, m.unitOptions(spec))
	}
	observability.Layout().OnLoad(len(m.units), time.Since(start), nil)
	m.events.Publish(Event{Kind: EventLayoutLoaded, Units: m.Units(), Manager: m})
	return nil
}

// GetLayout returns the current snapshot. The result shares no memory with
// the live units.
func (m *Manager) GetLayout() Snapshot {
	s := make(Snapshot, len(m.units))
	for i, u := range m.units {
		s[i] = Entry{ID: u.id, Coords: u.rect}
	}
	observability.Layout().OnSnapshot(len(s))
	return s
}

// HandleDoubleClick creates a unit of default size centered under the
// pointer. The position is made container-relative, snapped down and kept
// at least one snap interval from the container edge. It returns the new
// unit.
func (m *Manager) HandleDoubleClick(page grid.Point) *Unit {
	half := m.opts.MinSize / 2
	x := page.X - m.offset.X - half
	y := page.Y - m.offset.Y - half

	x = grid.AtLeast(grid.SnapValue(x, m.opts.Snap, false), m.opts.Snap)
	y = grid.AtLeast(grid.SnapValue(y, m.opts.Snap, false), m.opts.Snap)

	spec := UnitSpec{
		ID:   m.opts.NewID(),
		Snap: m.opts.Snap,
		Rect: grid.Rect{Top: y, Left: x},
	}
	return m.addUnit(spec, m.unitOptions(spec))
}

func (m *Manager) handleUnitEvent(e Event) {
	switch e.Kind {
	case EventDestroyed:
		m.RemoveUnit(e.Unit)
	case EventMoveEnded:
		m.events.Publish(Event{Kind: EventUnitMoved, Unit: e.Unit, Manager: m})
	case EventResizeEnded:
		m.events.Publish(Event{Kind: EventUnitResized, Unit: e.Unit, Manager: m})
	}
}
