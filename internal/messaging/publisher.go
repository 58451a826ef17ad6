package messaging

import (
	"context"

	"github.com/stableflow/reserve-engine/internal/domain"
)

// Publisher defines the interface for publishing engine events to the
// message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes one engine event to the message broker
	PublishEvent(ctx context.Context, event *domain.Event) error
	// Close closes the connection
	Close()
}
