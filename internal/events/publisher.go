package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

const Topic = "salon.appointments"

// Lifecycle event types published after the owning transaction commits.
const (
	AppointmentCreated       = "appointment.created"
	AppointmentUpdated       = "appointment.updated"
	AppointmentCancelled     = "appointment.cancelled"
	AppointmentAssigned      = "appointment.assigned"
	AppointmentStatusChanged = "appointment.status_changed"
)

type Event struct {
	Type          string         `json:"type"`
	AppointmentID uint           `json:"appointment_id"`
	Payload       map[string]any `json:"payload,omitempty"`
}

// Publisher emits lifecycle events. Publishing is fire-and-forget: a
// broker failure is logged and never affects the booking outcome.
type Publisher interface {
	Publish(ev Event)
	Close() error
}

// --------------------------------------------------
// Kafka
// --------------------------------------------------

type kafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(broker string) (Publisher, error) {
	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	defer conn.Close()

	writer := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
	}

	return &kafkaPublisher{writer: writer}, nil
}

func (p *kafkaPublisher) Publish(ev Event) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		value, err := json.Marshal(ev)
		if err != nil {
			log.Println("events: marshal error:", err)
			return
		}

		msg := kafka.Message{
			Key:   []byte(fmt.Sprintf("%d", ev.AppointmentID)),
			Value: value,
		}
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			log.Println("events: publish error:", err)
		}
	}()
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// --------------------------------------------------
// No-op (no broker configured)
// --------------------------------------------------

type noopPublisher struct{}

func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(Event) {}
func (noopPublisher) Close() error  { return nil }
