package domain

import "time"

// EventTopic identifies the kind of an order event. The set is closed;
// consumers must drop anything they do not recognize.
type EventTopic string

const (
	TopicOrderCreated       EventTopic = "order_created"
	TopicOrderUpdated       EventTopic = "order_updated"
	TopicOrderStatusChanged EventTopic = "order_status_changed"
)

// OrderEvent is the wire envelope published for every state-affecting
// operation. Order is always the full current snapshot, never a delta;
// consumers must tolerate duplicate and out-of-order delivery and key
// staleness off the payload itself.
type OrderEvent struct {
	Topic     EventTopic `json:"type"`
	Order     Order      `json:"order"`
	Timestamp time.Time  `json:"timestamp"`
}
