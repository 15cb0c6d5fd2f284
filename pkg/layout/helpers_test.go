package layout

import (
	"fmt"
	"testing"

	"github.com/matzehuels/gridsnap/pkg/grid"
)

// recordingRenderer records every call it receives.
type recordingRenderer struct {
	created   []Element
	attached  map[string]int
	detached  map[string]int
	destroyed []string
	styles    map[string]Styles
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{
		attached: make(map[string]int),
		detached: make(map[string]int),
		styles:   make(map[string]Styles),
	}
}

func (r *recordingRenderer) Create(el Element)             { r.created = append(r.created, el) }
func (r *recordingRenderer) Attach(id string)              { r.attached[id]++ }
func (r *recordingRenderer) Detach(id string)              { r.detached[id]++ }
func (r *recordingRenderer) Destroy(id string)             { r.destroyed = append(r.destroyed, id) }
func (r *recordingRenderer) SetStyles(id string, s Styles) { r.styles[id] = s }

// eventLog collects events published on a bus.
type eventLog struct {
	events []Event
}

func (l *eventLog) Notify(e Event) { l.events = append(l.events, e) }

func (l *eventLog) kinds() []EventKind {
	out := make([]EventKind, len(l.events))
	for i, e := range l.events {
		out[i] = e.Kind
	}
	return out
}

func (l *eventLog) count(k EventKind) int {
	n := 0
	for _, e := range l.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// sequentialIDs returns an id generator yielding "gen-1", "gen-2", ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
}

// newTestManager returns a manager with default limits, a fixed container
// offset and deterministic generated ids.
func newTestManager(t *testing.T, offset grid.Point) (*Manager, *recordingRenderer, *eventLog) {
	t.Helper()
	r := newRecordingRenderer()
	m, err := NewManager(StaticSurface(offset), r, Options{NewID: sequentialIDs()})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	log := &eventLog{}
	m.Subscribe(log)
	return m, r, log
}

func mustUnit(t *testing.T, m *Manager, id string) *Unit {
	t.Helper()
	u := m.GetUnit(id)
	if u == nil {
		t.Fatalf("GetUnit(%q) = nil", id)
	}
	return u
}

func down(id string, part Part, x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerDown, Page: grid.Point{X: x, Y: y}, UnitID: id, Part: part}
}

func move(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerMove, Page: grid.Point{X: x, Y: y}}
}

func up(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerUp, Page: grid.Point{X: x, Y: y}}
}
