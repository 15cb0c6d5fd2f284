package layout

import "github.com/matzehuels/gridsnap/pkg/grid"

// Element describes the visual element created for a unit.
type Element struct {
	// ID is the element identifier: the manager's id prefix plus the unit id.
	ID   string
	Rect grid.Rect
}

// Styles is the visual state pushed to a [Renderer] whenever a unit's
// geometry or drag state changes.
type Styles struct {
	Rect     grid.Rect
	Dragging bool
}

// Renderer creates and updates the visual element of each unit. The engine
// only calls through this interface and never assumes a specific rendering
// technology.
//
// Attach shows the element's interaction controls (resize handle, remove
// button); Detach hides them. Destroy removes the element entirely.
type Renderer interface {
	Create(el Element)
	Attach(id string)
	Detach(id string)
	Destroy(id string)
	SetStyles(id string, s Styles)
}

// NopRenderer discards every call. It is used for headless managers such as
// the HTTP server and the inspect command.
type NopRenderer struct{}

func (NopRenderer) Create(Element)           {}
func (NopRenderer) Attach(string)            {}
func (NopRenderer) Detach(string)            {}
func (NopRenderer) Destroy(string)           {}
func (NopRenderer) SetStyles(string, Styles) {}

// Surface reports where the container's origin sits in page space.
type Surface interface {
	Offset() grid.Point
}

// StaticSurface is a Surface with a fixed offset.
type StaticSurface grid.Point

// Offset returns the fixed offset.
func (s StaticSurface) Offset() grid.Point { return grid.Point(s) }

// SurfaceFunc adapts a function to [Surface].
type SurfaceFunc func() grid.Point

// Offset calls f.
func (f SurfaceFunc) Offset() grid.Point { return f() }
