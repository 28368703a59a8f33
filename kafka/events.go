package kafka

import "time"

// CartItemAddedEvent is emitted after a successful add-to-cart. The
// notifier consumes it to drive the user-facing notification surface.
type CartItemAddedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	UserID      uint      `json:"user_id"`
	ProductID   uint      `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"` // quantity now held, not the delta
	Timestamp   time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeCartItemAdded = "cart.item_added"
)

// Kafka topics
const (
	TopicCartEvents = "cart-events"
)
