package board

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"qrmesa/internal/domain"
)

// BoardStore holds the live dashboard state derived from order events.
type BoardStore interface {
	ApplyOrder(ctx context.Context, order domain.Order) error
}

// Consumer feeds order events into the dashboard store. Every payload
// is a full snapshot and the store writes are idempotent, so duplicate
// or reordered deliveries converge on the same state.
type Consumer struct {
	Reader *kafka.Reader
	Store  BoardStore
}

func NewConsumer(reader *kafka.Reader, store BoardStore) *Consumer {
	return &Consumer{Reader: reader, Store: store}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting dashboard consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

// ProcessEvent applies one event to the board. Unknown topics are
// dropped; the topic set is closed.
func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) {
	switch event.Topic {
	case domain.TopicOrderCreated, domain.TopicOrderUpdated, domain.TopicOrderStatusChanged:
	default:
		return
	}

	if err := c.Store.ApplyOrder(ctx, event.Order); err != nil {
		log.Printf("Error applying order %d to board: %v", event.Order.ID, err)
		return
	}
}
