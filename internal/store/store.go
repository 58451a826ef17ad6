package store

import (
	"context"

	"github.com/stableflow/reserve-engine/internal/store/schema"
)

// Store defines the interface for the event journal
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// InsertEvents appends a batch of journal rows in emission order
	InsertEvents(ctx context.Context, events []schema.LedgerEvent) error
	// ListEvents returns up to limit rows after the given cursor,
	// oldest first
	ListEvents(ctx context.Context, afterCursor int64, limit int) ([]schema.LedgerEvent, error)
}
