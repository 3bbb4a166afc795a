package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Routing keys of the domain events published after a commit.
const (
	EventAppointmentCreated       = "appointment.created"
	EventAppointmentStatusChanged = "appointment.status_changed"
	EventPrescriptionIssued       = "prescription.issued"
)

type Event struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// EventPublisher announces committed changes. Delivery is best effort; a
// failed publish never undoes the change it describes.
type EventPublisher interface {
	Publish(ctx context.Context, name string, payload interface{})
	Close() error
}

type amqpEventPublisher struct {
	mu       sync.Mutex
	channel  *amqp.Channel
	exchange string
	log      *logrus.Logger
}

func NewAMQPEventPublisher(conn *amqp.Connection, exchange string, log *logrus.Logger) (EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open publish channel: %w", err)
	}

	return &amqpEventPublisher{
		channel:  ch,
		exchange: exchange,
		log:      log,
	}, nil
}

func (p *amqpEventPublisher) Publish(ctx context.Context, name string, payload interface{}) {
	body, err := json.Marshal(Event{
		ID:         uuid.New(),
		Name:       name,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		p.log.Warnf("Failed to encode event %s: %+v", name, err)
		return
	}

	message := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(ctx, p.exchange, name, false, false, message); err != nil {
		p.log.Warnf("Failed to publish event %s: %+v", name, err)
	}
}

func (p *amqpEventPublisher) Close() error {
	return p.channel.Close()
}

type noopEventPublisher struct {
	log *logrus.Logger
}

// NewNoopEventPublisher is used when no broker is configured.
func NewNoopEventPublisher(log *logrus.Logger) EventPublisher {
	return &noopEventPublisher{log: log}
}

func (p *noopEventPublisher) Publish(ctx context.Context, name string, payload interface{}) {
	p.log.Debugf("Event %s not published: no broker configured", name)
}

func (p *noopEventPublisher) Close() error { return nil }
