package notify

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridsnap/pkg/layout"
	"github.com/matzehuels/gridsnap/pkg/observability"
)

// LogObserver logs every manager notification. Unit-level notifications
// are logged at info level, bulk ones (clear, load) at debug level with the
// resulting layout size.
type LogObserver struct {
	Logger *log.Logger
}

// Notify implements [layout.Observer].
func (o LogObserver) Notify(e layout.Event) {
	l := o.Logger
	if l == nil {
		l = log.Default()
	}
	msg := NewMessage(e, time.Now())
	switch {
	case msg.Unit != nil:
		c := msg.Unit.Coords
		l.Info(msg.Event, "unit", msg.Unit.ID, "left", c.Left, "top", c.Top, "width", c.Width, "height", c.Height)
	default:
		l.Debug(msg.Event, "units", len(msg.Units), "ids", msg.Units.IDs(), "size", msg.Size)
	}
}

// LogHooks reports session and layout timings through a logger at debug
// level. It implements [observability.SessionHooks] and
// [observability.LayoutHooks].
type LogHooks struct {
	Logger *log.Logger
}

// Install registers h as the process-wide session and layout hooks.
func (h LogHooks) Install() {
	observability.SetSessionHooks(h)
	observability.SetLayoutHooks(h)
}

func (h LogHooks) logger() *log.Logger {
	if h.Logger == nil {
		return log.Default()
	}
	return h.Logger
}

func (h LogHooks) OnSessionStart(unitID, mode string) {
	h.logger().Debug("session started", "unit", unitID, "mode", mode)
}

func (h LogHooks) OnSessionEnd(unitID, mode string, d time.Duration, abandoned bool) {
	h.logger().Debug("session ended", "unit", unitID, "mode", mode, "duration", d, "abandoned", abandoned)
}

func (h LogHooks) OnLoad(units int, d time.Duration, err error) {
	if err != nil {
		h.logger().Warn("layout load failed", "error", err)
		return
	}
	h.logger().Debug("layout loaded", "units", units, "duration", d)
}

func (h LogHooks) OnClear(units int) {
	h.logger().Debug("layout cleared", "units", units)
}

func (h LogHooks) OnSnapshot(units int) {
	h.logger().Debug("layout snapshot", "units", units)
}
