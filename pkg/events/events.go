package events

import (
	"context"
	"time"
)

// OrderEvent is the payload published to the order event stream.
type OrderEvent struct {
	Type      string    `json:"type"` // order.created | order.status_changed
	OrderID   uint      `json:"orderId"`
	UserID    uint      `json:"userId"`
	Status    string    `json:"status"`
	Total     int64     `json:"total,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	TypeOrderCreated       = "order.created"
	TypeOrderStatusChanged = "order.status_changed"
)

// Publisher delivers order events to whatever downstream cares (kitchen
// displays, analytics). Publishing is best effort from the API's point of
// view; a failed publish never fails the request that triggered it.
type Publisher interface {
	Publish(ctx context.Context, evt OrderEvent) error
}

// NopPublisher is used when no broker is configured, and in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, OrderEvent) error { return nil }
