package layout

import (
	"reflect"
	"testing"

	"github.com/matzehuels/gridsnap/pkg/errors"
	"github.com/matzehuels/gridsnap/pkg/grid"
)

func TestNewManagerDefaults(t *testing.T) {
	m, err := NewManager(nil, nil, Options{})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	opts := m.Options()
	if opts.Snap != DefaultSnap || opts.MinSize != DefaultMinSize || opts.MaxSize != DefaultMaxSize {
		t.Errorf("Options() = %+v, want package defaults", opts)
	}
	if opts.IDPrefix != DefaultIDPrefix {
		t.Errorf("IDPrefix = %q, want %q", opts.IDPrefix, DefaultIDPrefix)
	}
	if m.Editable() {
		t.Error("new manager should start static")
	}
}

func TestNewManagerInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"negative snap", Options{Snap: -5}},
		{"min above max", Options{MinSize: 500, MaxSize: 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewManager(nil, nil, tt.opts)
			if !errors.Is(err, errors.ErrCodeInvalidArgument) {
				t.Errorf("NewManager() error = %v, want INVALID_ARGUMENT", err)
			}
		})
	}
}

func TestManagersDoNotShareUnits(t *testing.T) {
	a, _, _ := newTestManager(t, grid.Point{})
	b, _, _ := newTestManager(t, grid.Point{})
	a.AddUnit(UnitSpec{ID: "only-in-a"})
	if b.Len() != 0 {
		t.Errorf("second manager sees %d units, want 0", b.Len())
	}
}

func TestAddUnit(t *testing.T) {
	m, r, log := newTestManager(t, grid.Point{})

	got := m.AddUnit(UnitSpec{ID: "u1", Rect: grid.Rect{Top: 40, Left: 60}})
	if got != m {
		t.Error("AddUnit should return the manager for chaining")
	}

	u := mustUnit(t, m, "u1")
	if want := (grid.Rect{Top: 40, Left: 60, Width: 200, Height: 200}); u.Rect() != want {
		t.Errorf("Rect() = %v, want %v", u.Rect(), want)
	}
	if want := (UnitOptions{Snap: 20, MinSize: 200, MaxSize: 2000}); u.Options() != want {
		t.Errorf("Options() = %+v, want %+v", u.Options(), want)
	}
	if u.ElementID() != "unit-u1" {
		t.Errorf("ElementID() = %q, want unit-u1", u.ElementID())
	}
	if u.Attached() {
		t.Error("unit attached while manager is static")
	}
	if len(r.created) != 1 || r.created[0].ID != "unit-u1" {
		t.Errorf("created elements = %+v", r.created)
	}
	if len(log.events) != 1 || log.events[0].Kind != EventUnitAdded || log.events[0].Unit != u || log.events[0].Manager != m {
		t.Errorf("events = %+v, want one addUnit carrying unit and manager", log.events)
	}
}

func TestAddUnitOverrides(t *testing.T) {
	m, _, _ := newTestManager(t, grid.Point{})
	m.AddUnit(UnitSpec{ID: "u1", Snap: 10, MinSize: 50, MaxSize: 400})

	u := mustUnit(t, m, "u1")
	if want := (UnitOptions{Snap: 10, MinSize: 50, MaxSize: 400}); u.Options() != want {
		t.Errorf("Options() = %+v, want %+v", u.Options(), want)
	}
	if r := u.Rect(); r.Width != 50 || r.Height != 50 {
		t.Errorf("default size = %vx%v, want 50x50 from MinSize", r.Width, r.Height)
	}
}

func TestAddUnitGeneratesID(t *testing.T) {
	m, _, _ := newTestManager(t, grid.Point{})
	m.AddUnit(UnitSpec{})
	if m.GetUnit("gen-1") == nil {
		t.Errorf("GetLayout() ids = %v, want generated gen-1", m.GetLayout().IDs())
	}
}

func TestAddUnitWhileEditableAttaches(t *testing.T) {
	m, r, _ := newTestManager(t, grid.Point{})
	m.SetEditable(true).AddUnit(UnitSpec{ID: "u1"})
	if !mustUnit(t, m, "u1").Attached() {
		t.Error("unit added while editable should be attached")
	}
	if r.attached["unit-u1"] != 1 {
		t.Errorf("renderer Attach calls = %d, want 1", r.attached["unit-u1"])
	}
}

func TestSetEditableIdempotent(t *testing.T) {
	m, r, _ := newTestManager(t, grid.Point{})
	m.AddUnit(UnitSpec{ID: "a"}).AddUnit(UnitSpec{ID: "b"})

	m.SetEditable(true).SetEditable(true)
	if r.attached["unit-a"] != 1 || r.attached["unit-b"] != 1 {
		t.Errorf("attach calls = %v, want one per unit", r.attached)
	}

	m.SetEditable(false).SetEditable(false)
	if r.detached["unit-a"] != 1 || r.detached["unit-b"] != 1 {
		t.Errorf("detach calls = %v, want one per unit", r.detached)
	}
	if m.Editable() {
		t.Error("Editable() = true after disabling")
	}
	if m.Dispatch(PointerEvent{Kind: DoubleClick, Page: grid.Point{X: 400, Y: 400}}) {
		t.Error("double-click still bound after leaving editable mode")
	}
}

func TestRemoveUnitTolerant(t *testing.T) {
	m, _, log := newTestManager(t, grid.Point{})
	m.AddUnit(UnitSpec{ID: "a"}).AddUnit(UnitSpec{ID: "b"})
	a := mustUnit(t, m, "a")

	other, _, _ := newTestManager(t, grid.Point{})
	other.AddUnit(UnitSpec{ID: "stranger"})

	m.RemoveUnit(mustUnit(t, other, "stranger"))
	m.RemoveUnit(nil)
	if m.Len() != 2 || log.count(EventUnitRemoved) != 0 {
		t.Fatalf("removing a non-member changed state: Len()=%d removed=%d", m.Len(), log.count(EventUnitRemoved))
	}

	m.RemoveUnit(a)
	m.RemoveUnit(a)
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
	if log.count(EventUnitRemoved) != 1 {
		t.Errorf("removeUnit events = %d, want 1 for a double removal", log.count(EventUnitRemoved))
	}

	// Destroying a unit that was already removed goes through the tolerant
	// path again.
	a.Destroy()
	if log.count(EventUnitRemoved) != 1 {
		t.Errorf("removeUnit events after destroy = %d, want 1", log.count(EventUnitRemoved))
	}
}

func TestGetUnit(t *testing.T) {
	m, _, _ := newTestManager(t, grid.Point{})
	m.AddUnit(UnitSpec{ID: "a"}).AddUnit(UnitSpec{ID: "b"})

	if u := m.GetUnit("b"); u == nil || u.ID() != "b" {
		t.Errorf("GetUnit(b) = %v", u)
	}
	if u := m.GetUnit("missing"); u != nil {
		t.Errorf("GetUnit(missing) = %v, want nil", u)
	}
}

func TestClearLayout(t *testing.T) {
	m, r, log := newTestManager(t, grid.Point{})
	m.AddUnit(UnitSpec{ID: "a"}).AddUnit(UnitSpec{ID: "b"}).AddUnit(UnitSpec{ID: "c"})
	log.events = nil

	m.ClearLayout()

	want := []EventKind{EventUnitRemoved, EventUnitRemoved, EventUnitRemoved, EventLayoutCleared}
	if got := log.kinds(); !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
	if len(r.destroyed) != 3 {
		t.Errorf("destroyed elements = %v, want 3", r.destroyed)
	}
	if got := m.GetLayout(); len(got) != 0 {
		t.Errorf("GetLayout() = %v, want empty", got)
	}
}

func TestClearLayoutEmpty(t *testing.T) {
	m, _, log := newTestManager(t, grid.Point{})
	m.ClearLayout()
	if got := log.kinds(); !reflect.DeepEqual(got, []EventKind{EventLayoutCleared}) {
		t.Errorf("events = %v, want [clearLayout]", got)
	}
}

func TestLoadLayout(t *testing.T) {
	m, _, log := newTestManager(t, grid.Point{})
	m.AddUnit(UnitSpec{ID: "old"})
	log.events = nil

	snap := Snapshot{
		{ID: "b", Coords: grid.Rect{Top: 20, Left: 20, Width: 200, Height: 400}},
		{ID: "a", Coords: grid.Rect{Top: 240, Left: 20, Width: 600, Height: 200}},
	}
	if err := m.LoadLayout(snap); err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}

	if got := m.GetLayout(); !got.Equal(snap) {
		t.Errorf("GetLayout() = %v, want %v", got, snap)
	}
	if m.GetUnit("old") != nil {
		t.Error("previous unit survived LoadLayout")
	}

	last := log.events[len(log.events)-1]
	if last.Kind != EventLayoutLoaded || len(last.Units) != 2 || last.Manager != m {
		t.Errorf("last event = %+v, want loadLayout with 2 units", last)
	}
	if last.Units[0].ID() != "b" || last.Units[1].ID() != "a" {
		t.Errorf("loaded order = [%s %s], want [b a]", last.Units[0].ID(), last.Units[1].ID())
	}
}

func TestLoadLayoutInvalid(t *testing.T) {
	m, _, log := newTestManager(t, grid.Point{})
	m.AddUnit(UnitSpec{ID: "keep", Rect: grid.Rect{Top: 40, Left: 40}})
	before := m.GetLayout()
	log.events = nil

	err := m.LoadLayout(nil)
	if !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Fatalf("LoadLayout(nil) error = %v, want INVALID_ARGUMENT", err)
	}
	if got := m.GetLayout(); !got.Equal(before) {
		t.Errorf("GetLayout() = %v, want unchanged %v", got, before)
	}
	if len(log.events) != 0 {
		t.Errorf("events = %v, want none", log.kinds())
	}
}

func TestLoadLayoutEmptyClears(t *testing.T) {
	m, _, _ := newTestManager(t, grid.Point{})
	m.AddUnit(UnitSpec{ID: "a"})
	if err := m.LoadLayout(Snapshot{}); err != nil {
		t.Fatalf("LoadLayout(empty) error = %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	m, _, _ := newTestManager(t, grid.Point{})
	m.SetEditable(true).
		AddUnit(UnitSpec{ID: "a", Rect: grid.Rect{Top: 20, Left: 20, Width: 240, Height: 200}}).
		AddUnit(UnitSpec{ID: "b", Rect: grid.Rect{Top: 13.5, Left: 7, Width: 333, Height: 201}}).
		AddUnit(UnitSpec{ID: "c"})

	before := m.GetLayout()
	if err := m.LoadLayout(m.GetLayout()); err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if after := m.GetLayout(); !after.Equal(before) {
		t.Errorf("round trip changed layout:\n got  %v\n want %v", after, before)
	}
	if !mustUnit(t, m, "b").Attached() {
		t.Error("units loaded while editable should be attached")
	}
}

func TestGetLayoutIsIndependent(t *testing.T) {
	m, _, _ := newTestManager(t, grid.Point{})
	m.AddUnit(UnitSpec{ID: "a", Rect: grid.Rect{Top: 40, Left: 40}})

	snap := m.GetLayout()
	snap[0].Coords.Width = 999
	snap[0].ID = "mutated"

	u := mustUnit(t, m, "a")
	if u.Rect().Width != 200 {
		t.Errorf("live unit width = %v after mutating snapshot, want 200", u.Rect().Width)
	}
	if m.GetLayout()[0].ID != "a" {
		t.Error("live unit id changed after mutating snapshot")
	}
}

func TestHandleDoubleClick(t *testing.T) {
	tests := []struct {
		name    string
		offset  grid.Point
		page    grid.Point
		wantTop float64
		wantLft float64
	}{
		{
			name:    "centered and snapped down",
			page:    grid.Point{X: 130, Y: 130},
			wantTop: 20,
			wantLft: 20,
		},
		{
			name:    "clamped near the edge",
			page:    grid.Point{X: 10, Y: 50},
			wantTop: 20,
			wantLft: 20,
		},
		{
			name:    "container offset removed",
			offset:  grid.Point{X: 50, Y: 100},
			page:    grid.Point{X: 475, Y: 345},
			wantTop: 140,
			wantLft: 320,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestManager(t, tt.offset)
			m.SetEditable(true)
			m.Dispatch(PointerEvent{Kind: DoubleClick, Page: tt.page})

			units := m.Units()
			if len(units) != 1 {
				t.Fatalf("Units() = %d, want 1", len(units))
			}
			r := units[0].Rect()
			if r.Top != tt.wantTop || r.Left != tt.wantLft {
				t.Errorf("Rect() = %v, want top=%v left=%v", r, tt.wantTop, tt.wantLft)
			}
			if r.Width != 200 || r.Height != 200 {
				t.Errorf("size = %vx%v, want default 200x200", r.Width, r.Height)
			}
			if units[0].ID() != "gen-1" {
				t.Errorf("ID() = %q, want gen-1", units[0].ID())
			}
		})
	}
}

func TestUnitsReturnsCopy(t *testing.T) {
	m, _, _ := newTestManager(t, grid.Point{})
	m.AddUnit(UnitSpec{ID: "a"})
	units := m.Units()
	units[0] = nil
	if m.GetUnit("a") == nil {
		t.Error("mutating Units() result affected the manager")
	}
}

func TestAddRejectsInvalidSpecs(t *testing.T) {
	tests := []struct {
		name string
		spec UnitSpec
	}{
		{"duplicate id", UnitSpec{ID: "taken"}},
		{"min override above max", UnitSpec{ID: "big", MinSize: 3000}},
		{"max override below min", UnitSpec{ID: "small", MaxSize: 100}},
		{"min above max override", UnitSpec{ID: "both", MinSize: 500, MaxSize: 400}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, log := newTestManager(t, grid.Point{})
			m.AddUnit(UnitSpec{ID: "taken"})
			log.events = nil

			u, err := m.Add(tt.spec)
			if !errors.Is(err, errors.ErrCodeInvalidArgument) {
				t.Fatalf("Add() error = %v, want INVALID_ARGUMENT", err)
			}
			if u != nil {
				t.Errorf("Add() unit = %v, want nil", u.ID())
			}
			m.AddUnit(tt.spec)
			if m.Len() != 1 || len(log.events) != 0 {
				t.Errorf("Len() = %d, events = %v; want 1 unit and no events", m.Len(), log.kinds())
			}
		})
	}
}

func TestAddKeepsResizeWithinOverriddenLimits(t *testing.T) {
	m, _, _ := newTestManager(t, grid.Point{})
	u, err := m.Add(UnitSpec{ID: "u1", MinSize: 1000})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	u.StartResize()
	u.Drag(grid.Point{X: 9000, Y: 10})
	u.Release()
	if r := u.Rect(); r.Width != 2000 || r.Height != 1000 {
		t.Errorf("Rect() = %v, want 2000x1000", r)
	}
}

func TestLoadLayoutRejectsDuplicateIDs(t *testing.T) {
	m, _, log := newTestManager(t, grid.Point{})
	m.SetEditable(true).AddUnit(UnitSpec{ID: "a", Rect: grid.Rect{Top: 40, Left: 40}})
	before := m.GetLayout()
	log.events = nil

	err := m.LoadLayout(Snapshot{
		{ID: "a", Coords: grid.Rect{Top: 20, Left: 20, Width: 200, Height: 200}},
		{ID: "a", Coords: grid.Rect{Top: 400, Left: 400, Width: 200, Height: 200}},
	})
	if !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Fatalf("LoadLayout(duplicates) error = %v, want INVALID_ARGUMENT", err)
	}
	if got := m.GetLayout(); !got.Equal(before) {
		t.Errorf("GetLayout() = %v, want unchanged %v", got, before)
	}
	if len(log.events) != 0 {
		t.Errorf("events = %v, want none", log.kinds())
	}

	// The surviving unit keeps its pointer bindings.
	if !m.Dispatch(down("a", PartBody, 50, 50)) {
		t.Fatal("pointer-down on the kept unit not consumed")
	}
	if got := mustUnit(t, m, "a").Mode(); got != ModeMove {
		t.Errorf("Mode() = %v, want move", got)
	}
}

func TestSnapshotCheckIDs(t *testing.T) {
	if err := (Snapshot{{ID: "a"}, {ID: "b"}}).CheckIDs(); err != nil {
		t.Errorf("CheckIDs(unique) = %v", err)
	}
	if err := (Snapshot{{ID: "a"}, {ID: "b"}, {ID: "a"}}).CheckIDs(); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("CheckIDs(duplicate) = %v, want INVALID_ARGUMENT", err)
	}
}
