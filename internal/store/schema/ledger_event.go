package schema

import (
	"time"

	"gorm.io/datatypes"
)

// LedgerEvent represents the ledger_events table - the append-only journal
// of every event a committed engine operation emitted
type LedgerEvent struct {
	// Cursor is an auto-incrementing sequence number for efficient pagination and ordering
	Cursor int64 `gorm:"column:\"cursor\";primaryKey;autoIncrement"`
	// EventID is the engine-assigned event ID
	EventID string `gorm:"column:event_id;not null;uniqueIndex;type:text"`
	// Type identifies the event kind (transfer, mint, expansion, ...)
	Type string `gorm:"column:type;not null;type:text"`
	// FromAccount is the debited or acting account, null for mints
	FromAccount *string `gorm:"column:from_account;type:text"`
	// ToAccount is the credited account, null for burns
	ToAccount *string `gorm:"column:to_account;type:text"`
	// Value is the primary fixed-point amount as a decimal string
	Value string `gorm:"column:value;not null;type:numeric"`
	// OccurredAt is when the emitting operation committed
	OccurredAt time.Time `gorm:"column:occurred_at;not null;type:timestamptz"`
	// Meta holds the full event record as JSON for the secondary amounts
	Meta datatypes.JSON `gorm:"column:meta;type:jsonb"`
}

// TableName specifies the table name for the LedgerEvent model
func (LedgerEvent) TableName() string {
	return "ledger_events"
}
