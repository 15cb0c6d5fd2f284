// Package notify relays layout manager notifications to the outside world.
//
// A [layout.Manager] publishes its notifications synchronously on an
// in-process bus. The observers in this package subscribe to that bus and
// forward each notification as a [Message]:
//
//   - [LogObserver] writes one structured log line per notification using
//     charmbracelet/log.
//   - [Relay] publishes the JSON-encoded message on a Redis pub/sub channel
//     so other processes can follow an editing session.
//
// [Watch] is the receiving side of [Relay]: it subscribes to the channel and
// decodes each payload back into a [Message].
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	relay := notify.NewRelay(notify.RedisPublisher{Client: client}, "gridsnap:events", logger)
//	unsubscribe := m.Subscribe(relay)
//	defer unsubscribe()
//
// [layout.Manager]: github.com/matzehuels/gridsnap/pkg/layout.Manager
package notify
