package notify

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/gridsnap/pkg/layout"
)

const (
	// DefaultPublishTimeout bounds a single publish.
	DefaultPublishTimeout = 2 * time.Second

	// DefaultQueueSize is the number of notifications a relay buffers
	// before it starts dropping them.
	DefaultQueueSize = 256
)

// Publisher sends a payload to a pub/sub channel.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// RedisPublisher adapts a go-redis client to [Publisher].
type RedisPublisher struct {
	Client redis.UniversalClient
}

// Publish implements [Publisher].
func (p RedisPublisher) Publish(ctx context.Context, channel string, payload []byte) error {
	return p.Client.Publish(ctx, channel, payload).Err()
}

// Relay is a [layout.Observer] that publishes every notification on a
// channel. Notify only encodes and enqueues, so it never blocks the caller
// (the server holds its manager lock while notifying). Run does the
// publishing. When the queue is full the notification is dropped and
// logged. Publish failures are logged and otherwise ignored so the layout
// engine never observes them.
type Relay struct {
	pub     Publisher
	channel string
	logger  *log.Logger
	queue   chan queued

	// Timeout bounds each publish. Defaults to DefaultPublishTimeout.
	Timeout time.Duration

	now func() time.Time
}

type queued struct {
	kind    layout.EventKind
	payload []byte
}

// NewRelay creates a relay publishing to channel. A nil logger uses
// log.Default(). Nothing is published until Run is called.
func NewRelay(pub Publisher, channel string, logger *log.Logger) *Relay {
	if logger == nil {
		logger = log.Default()
	}
	return &Relay{
		pub:     pub,
		channel: channel,
		logger:  logger,
		queue:   make(chan queued, DefaultQueueSize),
		Timeout: DefaultPublishTimeout,
		now:     time.Now,
	}
}

// Channel returns the pub/sub channel name.
func (r *Relay) Channel() string { return r.channel }

// Notify implements [layout.Observer].
func (r *Relay) Notify(e layout.Event) {
	payload, err := NewMessage(e, r.now()).Encode()
	if err != nil {
		r.logger.Warn("relay encode failed", "event", e.Kind, "err", err)
		return
	}
	select {
	case r.queue <- queued{kind: e.Kind, payload: payload}:
	default:
		r.logger.Warn("relay queue full, dropping", "event", e.Kind, "channel", r.channel)
	}
}

// Run publishes queued notifications until ctx is cancelled, then
// publishes whatever is still queued and returns.
func (r *Relay) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for {
				select {
				case q := <-r.queue:
					r.publish(context.WithoutCancel(ctx), q)
				default:
					return
				}
			}
		case q := <-r.queue:
			r.publish(ctx, q)
		}
	}
}

func (r *Relay) publish(ctx context.Context, q queued) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()
	if err := r.pub.Publish(ctx, r.channel, q.payload); err != nil {
		r.logger.Warn("relay publish failed", "event", q.kind, "channel", r.channel, "err", err)
		return
	}
	r.logger.Debug("relayed", "event", q.kind, "channel", r.channel)
}

// Watch subscribes to channel and calls fn for every message until ctx is
// cancelled. Payloads that fail to decode are logged and skipped.
func Watch(ctx context.Context, client redis.UniversalClient, channel string, logger *log.Logger, fn func(Message)) error {
	if logger == nil {
		logger = log.Default()
	}
	sub := client.Subscribe(ctx, channel)
	defer sub.Close()

	// Receive blocks until the subscription is confirmed.
	if _, err := sub.Receive(ctx); err != nil {
		return err
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			msg, err := DecodeMessage([]byte(m.Payload))
			if err != nil {
				logger.Warn("skipping message", "channel", m.Channel, "err", err)
				continue
			}
			fn(msg)
		}
	}
}
