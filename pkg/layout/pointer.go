package layout

import (
	"fmt"

	"github.com/matzehuels/gridsnap/pkg/grid"
)

// PointerKind is the kind of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota + 1
	PointerMove
	PointerUp
	Click
	DoubleClick
)

var pointerKindNames = map[PointerKind]string{
	PointerDown: "down",
	PointerMove: "move",
	PointerUp:   "up",
	Click:       "click",
	DoubleClick: "dblclick",
}

func (k PointerKind) String() string {
	if s, ok := pointerKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("PointerKind(%d)", int(k))
}

// MarshalText encodes the kind by name.
func (k PointerKind) MarshalText() ([]byte, error) {
	if _, ok := pointerKindNames[k]; !ok {
		return nil, fmt.Errorf("unknown pointer kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *PointerKind) UnmarshalText(b []byte) error {
	for kind, name := range pointerKindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown pointer kind %q", b)
}

// Part is the part of the display tree a pointer event hit.
type Part int

const (
	// PartContainer is the container background.
	PartContainer Part = iota
	// PartBody is a unit's body.
	PartBody
	// PartResize is a unit's resize control.
	PartResize
	// PartRemove is a unit's remove control.
	PartRemove
)

var partNames = map[Part]string{
	PartContainer: "container",
	PartBody:      "body",
	PartResize:    "resize",
	PartRemove:    "remove",
}

func (p Part) String() string {
	if s, ok := partNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Part(%d)", int(p))
}

// MarshalText encodes the part by name.
func (p Part) MarshalText() ([]byte, error) {
	if _, ok := partNames[p]; !ok {
		return nil, fmt.Errorf("unknown part %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes a part name.
func (p *Part) UnmarshalText(b []byte) error {
	for part, name := range partNames {
		if name == string(b) {
			*p = part
			return nil
		}
	}
	return fmt.Errorf("unknown part %q", b)
}

// PointerEvent is a pointer event in page coordinates, already hit-tested
// by the rendering side. UnitID is empty when Part is PartContainer.
type PointerEvent struct {
	Kind   PointerKind `json:"kind"`
	Page   grid.Point  `json:"page"`
	UnitID string      `json:"unit,omitempty"`
	Part   Part        `json:"part"`
}

func (e PointerEvent) String() string {
	if e.UnitID == "" {
		return fmt.Sprintf("%s %s on %s", e.Kind, e.Page, e.Part)
	}
	return fmt.Sprintf("%s %s on %s of %s", e.Kind, e.Page, e.Part, e.UnitID)
}
