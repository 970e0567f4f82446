// Package kafka publishes order state changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bakery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// DefaultTopic is used when no topic is configured.
const DefaultTopic = "bakery.order-state-changed"

// OrderStateChanged is the JSON payload of a state change message.
type OrderStateChanged struct {
	EventID    string    `json:"eventId"`
	OrderID    string    `json:"orderId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurredAt"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.StateChangePublisher. Messages are keyed by order
// id so that the changes of one order stay in one partition.
type Publisher struct {
	writer messageWriter
}

// NewPublisher creates a publisher writing to topic on the given brokers.
func NewPublisher(brokers []string, topic string) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}

	return newPublisher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	})
}

func newPublisher(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, change order.StateChange) error {
	msg, err := NewMessage(change)
	if err != nil {
		return err
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish state change of order %s: %w", change.OrderID(), err)
	}

	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NewMessage encodes change as an OrderStateChanged message.
func NewMessage(change order.StateChange) (kafka.Message, error) {
	payload := OrderStateChanged{
		EventID:    uuid.NewString(),
		OrderID:    change.OrderID().String(),
		From:       change.From().String(),
		To:         change.To().String(),
		Role:       change.Role().String(),
		OccurredAt: change.At().UTC(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode state change: %w", err)
	}

	return kafka.Message{
		Key:   []byte(payload.OrderID),
		Value: data,
		Time:  payload.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte("OrderStateChanged")},
		},
	}, nil
}

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NoopPublisher discards state changes. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, order.StateChange) error {
	return nil
}
