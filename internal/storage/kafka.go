package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"qrmesa/internal/domain"
)

// KafkaNotifier publishes order events onto a single topic, keyed by
// order id so events for one order land on one partition in order.
// Cross-order and cross-topic ordering is not promised; consumers must
// treat each payload as a full snapshot.
type KafkaNotifier struct {
	Writer *kafka.Writer
}

func NewKafkaNotifier(writer *kafka.Writer) *KafkaNotifier {
	return &KafkaNotifier{Writer: writer}
}

func (n *KafkaNotifier) Publish(ctx context.Context, topic domain.EventTopic, order *domain.Order) error {
	payload, _ := json.Marshal(domain.OrderEvent{
		Topic:     topic,
		Order:     *order,
		Timestamp: time.Now(),
	})

	// Bounded so a broker outage cannot stall the request path.
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return n.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(order.ID)),
		Value: payload,
	})
}
