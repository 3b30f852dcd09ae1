package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/rsat/josephjoseph-chile/internal/logger"
)

// Topic carries catalog sync events emitted by the import scripts.
const Topic = "catalog-events"

// Event types published by the reconciler.
const (
	TypeCreated = "product.created"
	TypeUpdated = "product.updated"
	TypeDeleted = "product.deleted"
)

type Event struct {
	Type      string    `json:"type"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher writes catalog sync events so downstream consumers (search
// indexers, the journal worker) can react to imports. Scripts run fine
// without one; the reconciler treats a nil publisher as disabled.
type Publisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewPublisher(brokers string, logger *logger.Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers),
			Topic:    Topic,
			Balancer: &kafka.LeastBytes{},
		},
		logger: logger,
	}
}

func (p *Publisher) Publish(eventType, productID, name string) error {
	event := Event{
		Type:      eventType,
		ProductID: productID,
		Name:      name,
		Timestamp: time.Now(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(productID),
		Value: value,
	}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
