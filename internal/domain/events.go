package domain

import (
	"math/big"

	"github.com/google/uuid"
)

// EventType classifies engine events
type EventType string

const (
	EventTypeTransfer         EventType = "transfer"
	EventTypeApproval         EventType = "approval"
	EventTypeMint             EventType = "mint"
	EventTypeBurn             EventType = "burn"
	EventTypeLiquidityAdded   EventType = "liquidity_added"
	EventTypeLiquidityRemoved EventType = "liquidity_removed"
	EventTypeExpansion        EventType = "expansion"
	EventTypeContraction      EventType = "contraction"
)

// Event is a flat, informational record emitted by a completed operation.
// Amounts are decimal strings of the fixed-point integers so that u128-sized
// values survive JSON round trips (the journal stores them as numeric).
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	From      *string   `json:"from"`         // nil for mint
	To        *string   `json:"to"`           // nil for burn
	Value     string    `json:"value"`        // primary amount of the event
	Share     string    `json:"share,omitempty"`      // share tokens minted/burned
	Synthetic string    `json:"synthetic,omitempty"`  // synthetic tokens moved
	Collateral string   `json:"collateral,omitempty"` // collateral moved
	ReserveUsed     string `json:"reserve_used,omitempty"`      // primary tranche consumed
	RiskReserveUsed string `json:"risk_reserve_used,omitempty"` // risk tranche consumed
	Issued          string `json:"issued,omitempty"`            // newly issued synthetic
	Timestamp int64 `json:"timestamp"` // unix milliseconds
}

// EventLog collects events produced inside a single operation. The engine
// drains it only after the operation commits, so aborted operations emit
// nothing.
type EventLog struct {
	events []Event
}

// Emit appends an event, assigning it a fresh ID
func (l *EventLog) Emit(e Event) {
	e.ID = uuid.NewString()
	l.events = append(l.events, e)
}

// Drain returns the collected events in emission order and resets the log
func (l *EventLog) Drain() []Event {
	out := l.events
	l.events = nil
	return out
}

// Reset discards any collected events
func (l *EventLog) Reset() {
	l.events = nil
}

// AccountRef renders an account for an event field
func AccountRef(a Account) *string {
	s := a.Hex()
	return &s
}

// AmountStr renders a fixed-point amount for an event field
func AmountStr(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
