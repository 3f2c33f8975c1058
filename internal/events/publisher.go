// Package events handles publishing events to NATS JetStream
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// ErrEncode is returned when an event cannot be serialized
var ErrEncode = errors.New("event encoding failed")

// AnswersSubmittedEvent is emitted whenever a questionnaire is submitted
type AnswersSubmittedEvent struct {
	ID           string            `json:"id"`
	DocumentType string            `json:"documentType"`
	Answers      map[string]string `json:"answers"`
	SubmittedAt  time.Time         `json:"submittedAt"`
}

// Publisher defines the interface for publishing events
type Publisher interface {
	AnswersSubmitted(ctx context.Context, event *AnswersSubmittedEvent) error
}

// JetStreamPublisher implements Publisher interface using NATS JetStream
type JetStreamPublisher struct {
	js nats.JetStreamContext
}

// NewPublisher creates a new JetStreamPublisher instance
func NewPublisher(js nats.JetStreamContext) *JetStreamPublisher {
	return &JetStreamPublisher{js: js}
}

// EnsureStream creates the answers stream if it does not exist yet
func EnsureStream(js nats.JetStreamContext) error {
	_, err := js.StreamInfo(AnswersStream)
	if err == nil {
		return nil
	}
	if !errors.Is(err, nats.ErrStreamNotFound) {
		return fmt.Errorf("lookup stream %s: %w", AnswersStream, err)
	}
	_, err = js.AddStream(&nats.StreamConfig{
		Name:     AnswersStream,
		Subjects: []string{AnswersStreamSubjects},
	})
	if err != nil {
		return fmt.Errorf("create stream %s: %w", AnswersStream, err)
	}
	return nil
}

func (p *JetStreamPublisher) publish(ctx context.Context, subject string, event any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	_, err = p.js.PublishAsync(subject, data)
	return err
}

// AnswersSubmitted publishes an "answers.submitted" event to NATS JetStream
func (p *JetStreamPublisher) AnswersSubmitted(ctx context.Context, event *AnswersSubmittedEvent) error {
	return p.publish(ctx, AnswersSubmitted, event)
}

// NopPublisher discards every event. Used when no broker is configured.
type NopPublisher struct{}

// AnswersSubmitted implements Publisher
func (NopPublisher) AnswersSubmitted(context.Context, *AnswersSubmittedEvent) error { return nil }
