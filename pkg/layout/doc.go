// Package layout implements the snap-to-grid interaction engine: units that
// can be moved and resized inside a container, and the manager that owns
// them.
//
// # Units
//
// A [Unit] is one rectangle with its own session state. Its mode is
// display, move or resize. A pointer-down on the unit body starts a move
// session, a pointer-down on its resize control starts a resize session,
// pointer moves update the geometry and the pointer-up ends the session:
//
//	display --down(body)--> move   --move--> move   --up--> display
//	display --down(resize)--> resize --move--> resize --up--> display
//
// Moves snap the pointer down to the grid and keep the unit at least one
// snap interval from the container's top-left edge. Resizes snap the pointer
// up and clamp width and height to [MinSize, MaxSize]. Geometry is only
// guaranteed to be grid-aligned once a session has written it; rectangles
// supplied at creation are stored as given.
//
// # Manager
//
// A [Manager] owns an ordered collection of units and the container they
// live in. In editable mode every unit is attached (its controls respond to
// the pointer) and a double-click on the container background creates a unit
// centered under the pointer. [Manager.GetLayout] and [Manager.LoadLayout]
// convert the collection to and from a [Snapshot]:
//
//	m, err := layout.NewManager(layout.StaticSurface{}, nil, layout.Options{})
//	if err != nil {
//	    return err
//	}
//	m.SetEditable(true).
//	    AddUnit(layout.UnitSpec{ID: "u1", Rect: grid.Rect{Top: 20, Left: 20}})
//
//	m.Dispatch(layout.PointerEvent{Kind: layout.PointerDown, Page: p, UnitID: "u1", Part: layout.PartBody})
//	m.Dispatch(layout.PointerEvent{Kind: layout.PointerMove, Page: q})
//	m.Dispatch(layout.PointerEvent{Kind: layout.PointerUp, Page: q})
//
//	snap := m.GetLayout()
//
// # Collaborators
//
// Rendering is delegated to a [Renderer] and the container's page offset is
// read from a [Surface]. Pointer events arrive already hit-tested as
// [PointerEvent] values; the [Container] routes them to units and holds the
// single session binding, so at most one unit is ever outside display mode.
//
// # Notifications
//
// Units publish EventDestroyed, EventMoveEnded and EventResizeEnded on their
// own [Bus]; the manager relays them as EventUnitRemoved, EventUnitMoved and
// EventUnitResized, and publishes EventUnitAdded, EventLayoutCleared and
// EventLayoutLoaded itself.
//
// Nothing in this package blocks or is safe for concurrent use. Callers
// serialize access, as an event loop naturally does.
package layout
