package events

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// Bus publishes service lifecycle events to NATS. A nil Bus drops every
// publish, so callers never need to guard for the unconfigured case.
type Bus struct {
	conn *nats.Conn
}

// Connect dials the provided NATS endpoint.
func Connect(url string, opts ...nats.Option) (*Bus, error) {
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, err
	}
	return &Bus{conn: nc}, nil
}

// Close drains and shuts down the underlying NATS connection.
func (b *Bus) Close() {
	if b == nil {
		return
	}
	if err := b.conn.Drain(); err != nil {
		b.conn.Close()
	}
}

// Publish encodes v as JSON and publishes it to the given subject. Delivery
// is best effort; failures are logged, never surfaced to the request path.
func (b *Bus) Publish(subject string, v any) {
	if b == nil || subject == "" {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Str("subject", subject).Msg("encode event")
		return
	}
	if err := b.conn.Publish(subject, data); err != nil {
		log.Warn().Err(err).Str("subject", subject).Msg("publish event")
	}
}
