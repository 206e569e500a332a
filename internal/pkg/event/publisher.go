// Package event publishes board mutation events to NATS JetStream so that
// connected clients can refresh their activity set on push.
package event

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"canvasflow.dev/backend/internal/pkg/observability"
)

const (
	SubjectActivities = "BOARD.activities"
	SubjectProjects   = "BOARD.projects"
	SubjectAlarms     = "BOARD.alarms"
)

type BoardEvent struct {
	EventID    string      `json:"eventId"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload,omitempty"`
}

type Publisher struct {
	JS nats.JetStreamContext
}

func NewPublisher(js nats.JetStreamContext) *Publisher {
	return &Publisher{JS: js}
}

func (p *Publisher) Publish(ctx context.Context, subject, typ string, payload interface{}) error {
	evt := BoardEvent{
		EventID:    ulid.Make().String(),
		Type:       typ,
		OccurredAt: time.Now(),
		Payload:    payload,
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	// MsgId doubles as the JetStream dedupe key.
	_, err = p.JS.Publish(subject, b, nats.MsgId(evt.EventID), nats.Context(ctx))
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Str("type", typ).Msg("failed to publish board event")
		return err
	}

	observability.BoardEventsPublished.WithLabelValues(subject).Inc()
	return nil
}
