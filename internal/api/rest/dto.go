package rest

// All amounts cross the API as decimal strings of the fixed-point
// integers; accounts are hex addresses.

// TransferRequest moves share tokens between accounts
type TransferRequest struct {
	Caller string `json:"caller" binding:"required"`
	From   string `json:"from"` // only for delegated transfers
	To     string `json:"to" binding:"required"`
	Value  string `json:"value" binding:"required"`
}

// ApproveRequest sets a spender allowance
type ApproveRequest struct {
	Caller  string `json:"caller" binding:"required"`
	Spender string `json:"spender" binding:"required"`
	Value   string `json:"value" binding:"required"`
}

// SupplyChangeRequest mints or burns share tokens
type SupplyChangeRequest struct {
	Caller  string `json:"caller" binding:"required"`
	Account string `json:"account" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}

// LockRequest overwrites an account lock
type LockRequest struct {
	Caller     string `json:"caller" binding:"required"`
	Account    string `json:"account" binding:"required"`
	UntilEpoch int64  `json:"until_epoch"`
	Amount     string `json:"amount" binding:"required"`
}

// LiquidityRequest deposits collateral
type LiquidityRequest struct {
	Caller           string `json:"caller" binding:"required"`
	CollateralAmount string `json:"collateral_amount" binding:"required"`
}

// RemoveLiquidityRequest redeems collateral for share tokens
type RemoveLiquidityRequest struct {
	Caller      string `json:"caller" binding:"required"`
	ShareAmount string `json:"share_amount" binding:"required"`
}

// RiskReserveRequest adds collateral to the risk tranche
type RiskReserveRequest struct {
	Caller string `json:"caller" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// RebaseRequest triggers an expansion or contraction
type RebaseRequest struct {
	Caller string `json:"caller" binding:"required"`
}

// PriceUpdateRequest overwrites the oracle prices
type PriceUpdateRequest struct {
	Caller          string `json:"caller" binding:"required"`
	CollateralPrice string `json:"collateral_price" binding:"required"`
	SyntheticPrice  string `json:"synthetic_price" binding:"required"`
}

// AccountResponse is the full per-account state
type AccountResponse struct {
	Account       string `json:"account"`
	Balance       string `json:"balance"`
	FreeBalance   string `json:"free_balance"`
	LockedAmount  string `json:"locked_amount"`
	LockUntil     int64  `json:"lock_until"`
	Coinday       string `json:"coinday"`
	PendingAwards string `json:"pending_awards"`
	Reward        string `json:"reward"`
	RewardDebt    string `json:"reward_debt"`
}

// SupplyResponse is the share token supply
type SupplyResponse struct {
	TotalSupply string `json:"total_supply"`
}

// AllowanceResponse is a spender allowance
type AllowanceResponse struct {
	Owner     string `json:"owner"`
	Spender   string `json:"spender"`
	Allowance string `json:"allowance"`
}

// LiquidityResponse is what AddLiquidity minted
type LiquidityResponse struct {
	ShareTokens     string `json:"share_tokens"`
	SyntheticTokens string `json:"synthetic_tokens"`
}

// RemoveLiquidityResponse is what RemoveLiquidity returned
type RemoveLiquidityResponse struct {
	CollateralAmount string `json:"collateral_amount"`
}

// RebaseResponse describes what a rebase moved
type RebaseResponse struct {
	SyntheticMoved  string `json:"synthetic_moved"`
	CollateralMoved string `json:"collateral_moved"`
	ReserveUsed     string `json:"reserve_used"`
	RiskReserveUsed string `json:"risk_reserve_used"`
	Issued          string `json:"issued"`
}

// ReserveResponse is the controller's tranche and pricing state
type ReserveResponse struct {
	CollateralReserve     string `json:"collateral_reserve"`
	CollateralRiskReserve string `json:"collateral_risk_reserve"`
	SyntheticReserve      string `json:"synthetic_reserve"`
	SyntheticRiskReserve  string `json:"synthetic_risk_reserve"`
	SyntheticSupply       string `json:"synthetic_supply"`
	ShareSupply           string `json:"share_supply"`
	LiabilityRatio        int64  `json:"liability_ratio"`
	SharePrice            string `json:"share_price"`
	LastExpandTime        int64  `json:"last_expand_time"`
	LastContractTime      int64  `json:"last_contract_time"`
}

// EventResponse is one journaled event
type EventResponse struct {
	Cursor     int64   `json:"cursor"`
	EventID    string  `json:"event_id"`
	Type       string  `json:"type"`
	From       *string `json:"from"`
	To         *string `json:"to"`
	Value      string  `json:"value"`
	OccurredAt int64   `json:"occurred_at"`
	Meta       any     `json:"meta,omitempty"`
}

// EventListResponse is a page of journaled events
type EventListResponse struct {
	Events     []EventResponse `json:"events"`
	NextCursor int64           `json:"next_cursor"`
}
