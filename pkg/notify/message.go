package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/matzehuels/gridsnap/pkg/layout"
)

// Message is the wire form of one manager notification.
type Message struct {
	Event string          `json:"event"`
	Unit  *layout.Entry   `json:"unit,omitempty"`
	Units layout.Snapshot `json:"units,omitempty"`
	Size  int             `json:"size"`
	Time  time.Time       `json:"time"`
}

// NewMessage projects e into a Message. Unit and Units carry snapshots of
// the affected units at the time of the notification.
func NewMessage(e layout.Event, now time.Time) Message {
	msg := Message{Event: e.Kind.String(), Time: now}
	if e.Unit != nil {
		entry := layout.Entry{ID: e.Unit.ID(), Coords: e.Unit.Rect()}
		msg.Unit = &entry
	}
	if len(e.Units) > 0 {
		msg.Units = make(layout.Snapshot, len(e.Units))
		for i, u := range e.Units {
			msg.Units[i] = layout.Entry{ID: u.ID(), Coords: u.Rect()}
		}
	}
	if e.Manager != nil {
		msg.Size = e.Manager.Len()
	}
	return msg
}

// Encode returns the JSON encoding of m.
func (m Message) Encode() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	return data, nil
}

// DecodeMessage parses a payload produced by [Message.Encode].
func DecodeMessage(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, fmt.Errorf("decode message: %w", err)
	}
	return m, nil
}
