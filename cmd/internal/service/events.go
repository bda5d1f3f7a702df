package service

import "context"

//go:generate mockgen -source=events.go -destination=mocks/mocks.go -package=mocks

// EventPublisher hands domain events to the message queue. Implementations
// must not block the caller on delivery.
type EventPublisher interface {
	SendProductMessage(ctx context.Context, payload string)
	SendNotification(ctx context.Context, payload string)
}
