package authevents

import (
	"context"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/app/models"
)

type noopPublisher struct{}

// NewNoopPublisher is used when RabbitMQ is not configured.
func NewNoopPublisher() contracts.AuthEventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, event *models.AuthEvent) error {
	return nil
}
