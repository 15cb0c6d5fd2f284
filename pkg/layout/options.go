package layout

import (
	"github.com/google/uuid"

	"github.com/matzehuels/gridsnap/pkg/errors"
	"github.com/matzehuels/gridsnap/pkg/grid"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSnap is the grid interval in pixels.
	DefaultSnap = 20.0

	// DefaultMinSize is the smallest width/height a unit can be resized to.
	DefaultMinSize = 200.0

	// DefaultMaxSize is the largest width/height a unit can be resized to.
	DefaultMaxSize = 2000.0

	// DefaultIDPrefix is prepended to unit ids to form element ids.
	DefaultIDPrefix = "unit-"
)

// =============================================================================
// Options - Manager Configuration
// =============================================================================

// Options configures a [Manager]. Snap, MinSize and MaxSize are handed to
// every unit the manager creates unless the unit's spec overrides them.
type Options struct {
	Snap     float64 `json:"snap,omitempty" toml:"snap"`
	MinSize  float64 `json:"min_size,omitempty" toml:"min_size"`
	MaxSize  float64 `json:"max_size,omitempty" toml:"max_size"`
	IDPrefix string  `json:"id_prefix,omitempty" toml:"id_prefix"`

	// NewID generates ids for units created by double-click or added
	// without one. Defaults to random UUIDs.
	NewID func() string `json:"-" toml:"-"`
}

// SetDefaults fills zero fields with the package defaults.
func (o *Options) SetDefaults() {
	if o.Snap == 0 {
		o.Snap = DefaultSnap
	}
	if o.MinSize == 0 {
		o.MinSize = DefaultMinSize
	}
	if o.MaxSize == 0 {
		o.MaxSize = DefaultMaxSize
	}
	if o.IDPrefix == "" {
		o.IDPrefix = DefaultIDPrefix
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
}

// Validate checks the option values. Call it after SetDefaults.
func (o Options) Validate() error {
	return UnitOptions{Snap: o.Snap, MinSize: o.MinSize, MaxSize: o.MaxSize}.Validate()
}

// UnitOptions are the per-unit limits.
type UnitOptions struct {
	Snap    float64
	MinSize float64
	MaxSize float64
}

// Validate checks that the snap interval and minimum size are positive and
// that the size range is not empty.
func (o UnitOptions) Validate() error {
	if o.Snap <= 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "snap must be positive (got %g)", o.Snap)
	}
	if o.MinSize <= 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "min size must be positive (got %g)", o.MinSize)
	}
	if o.MinSize > o.MaxSize {
		return errors.New(errors.ErrCodeInvalidArgument, "min size %g exceeds max size %g", o.MinSize, o.MaxSize)
	}
	return nil
}

// UnitSpec describes a unit to add. Zero Snap, MinSize and MaxSize inherit
// the manager's values; a zero Width or Height defaults to the unit's
// MinSize. An empty ID is replaced by a generated one. IDs are unique
// within a manager.
type UnitSpec struct {
	ID      string    `json:"id"`
	Rect    grid.Rect `json:"coords"`
	Snap    float64   `json:"snap,omitempty"`
	MinSize float64   `json:"min_size,omitempty"`
	MaxSize float64   `json:"max_size,omitempty"`
}
