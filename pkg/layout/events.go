package layout

// EventKind identifies a notification published by a [Unit] or a [Manager].
type EventKind int

const (
	// Unit notifications, consumed by the owning manager.
	EventDestroyed EventKind = iota + 1
	EventMoveEnded
	EventResizeEnded

	// Manager notifications, consumed by external observers.
	EventUnitAdded
	EventUnitRemoved
	EventLayoutCleared
	EventLayoutLoaded
	EventUnitResized
	EventUnitMoved
)

var eventNames = map[EventKind]string{
	EventDestroyed:     "destroy",
	EventMoveEnded:     "moveEnd",
	EventResizeEnded:   "resizeEnd",
	EventUnitAdded:     "addUnit",
	EventUnitRemoved:   "removeUnit",
	EventLayoutCleared: "clearLayout",
	EventLayoutLoaded:  "loadLayout",
	EventUnitResized:   "resizeUnit",
	EventUnitMoved:     "moveUnit",
}

func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return "unknown"
}

// Event is a single notification. Unit is set for per-unit events, Units
// for EventLayoutLoaded, and Manager for every manager notification.
type Event struct {
	Kind    EventKind
	Unit    *Unit
	Units   []*Unit
	Manager *Manager
}

// Observer receives notifications from a [Bus].
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a plain function to [Observer].
type ObserverFunc func(Event)

// Notify calls f(e).
func (f ObserverFunc) Notify(e Event) { f(e) }

// Bus delivers events to subscribers in subscription order. The zero value
// is ready to use. A Bus is not safe for concurrent use.
type Bus struct {
	subs []*subscription
}

type subscription struct {
	o Observer
}

// Subscribe registers o and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (b *Bus) Subscribe(o Observer) (unsubscribe func()) {
	s := &subscription{o: o}
	b.subs = append(b.subs, s)
	return func() {
		for i, cur := range b.subs {
			if cur == s {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers e to every current subscriber. Subscribers added or
// removed while publishing take effect from the next Publish.
func (b *Bus) Publish(e Event) {
	subs := b.subs
	for _, s := range subs {
		s.o.Notify(e)
	}
}

// Len reports the number of subscribers.
func (b *Bus) Len() int { return len(b.subs) }
