package rest

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stableflow/reserve-engine/internal/domain"
	"github.com/stableflow/reserve-engine/internal/engine"
	"github.com/stableflow/reserve-engine/internal/fixedpoint"
	"github.com/stableflow/reserve-engine/internal/reserve"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// GetAccount retrieves the full state of one account
	// GET /api/v1/accounts/:account
	GetAccount(c *gin.Context)

	// GetAllowance retrieves a spender allowance
	// GET /api/v1/accounts/:account/allowances/:spender
	GetAllowance(c *gin.Context)

	// GetSupply retrieves the share token supply
	// GET /api/v1/supply
	GetSupply(c *gin.Context)

	// GetReserve retrieves the reserve tranche and pricing state
	// GET /api/v1/reserve
	GetReserve(c *gin.Context)

	// ListEvents retrieves journaled events after a cursor
	// GET /api/v1/events?after=<cursor>&limit=<limit>
	ListEvents(c *gin.Context)

	// Transfer moves share tokens; a non-empty "from" makes it a
	// delegated transfer on the caller's allowance
	// POST /api/v1/transfers
	Transfer(c *gin.Context)

	// Approve sets a spender allowance
	// POST /api/v1/approvals
	Approve(c *gin.Context)

	// Mint creates share tokens (requires authentication)
	// POST /api/v1/mint
	Mint(c *gin.Context)

	// Burn destroys share tokens (requires authentication)
	// POST /api/v1/burn
	Burn(c *gin.Context)

	// SetLock overwrites an account lock (requires authentication)
	// POST /api/v1/locks
	SetLock(c *gin.Context)

	// AddLiquidity deposits collateral into the reserve
	// POST /api/v1/liquidity
	AddLiquidity(c *gin.Context)

	// RemoveLiquidity redeems collateral for share tokens
	// POST /api/v1/liquidity/remove
	RemoveLiquidity(c *gin.Context)

	// DepositRiskReserve adds collateral to the risk tranche
	// POST /api/v1/risk-reserve
	DepositRiskReserve(c *gin.Context)

	// Expand triggers an expansion rebase (requires authentication)
	// POST /api/v1/rebase/expand
	Expand(c *gin.Context)

	// Contract triggers a contraction rebase (requires authentication)
	// POST /api/v1/rebase/contract
	Contract(c *gin.Context)

	// UpdatePrices overwrites the oracle prices (requires authentication)
	// POST /api/v1/oracle/prices
	UpdatePrices(c *gin.Context)
}

// handler implements the Handler interface over the engine facade
type handler struct {
	engine *engine.Engine
}

// NewHandler creates a new REST handler
func NewHandler(e *engine.Engine) Handler {
	return &handler{engine: e}
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) GetAccount(c *gin.Context) {
	account, ok := parseAccountParam(c, c.Param("account"))
	if !ok {
		return
	}
	state := h.engine.Account(account)
	c.JSON(http.StatusOK, AccountResponse{
		Account:       account.Hex(),
		Balance:       state.Balance.String(),
		FreeBalance:   state.FreeBalance.String(),
		LockedAmount:  state.LockedAmount.String(),
		LockUntil:     state.LockUntil,
		Coinday:       state.Coinday.String(),
		PendingAwards: state.PendingAwards.String(),
		Reward:        state.Reward.String(),
		RewardDebt:    state.RewardDebt.String(),
	})
}

func (h *handler) GetAllowance(c *gin.Context) {
	owner, ok := parseAccountParam(c, c.Param("account"))
	if !ok {
		return
	}
	spender, ok := parseAccountParam(c, c.Param("spender"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, AllowanceResponse{
		Owner:     owner.Hex(),
		Spender:   spender.Hex(),
		Allowance: h.engine.Allowance(owner, spender).String(),
	})
}

func (h *handler) GetSupply(c *gin.Context) {
	c.JSON(http.StatusOK, SupplyResponse{TotalSupply: h.engine.TotalSupply().String()})
}

func (h *handler) GetReserve(c *gin.Context) {
	state := h.engine.Reserve()
	c.JSON(http.StatusOK, ReserveResponse{
		CollateralReserve:     state.CollateralReserve.String(),
		CollateralRiskReserve: state.CollateralRiskReserve.String(),
		SyntheticReserve:      state.SyntheticReserve.String(),
		SyntheticRiskReserve:  state.SyntheticRiskReserve.String(),
		SyntheticSupply:       state.SyntheticSupply.String(),
		ShareSupply:           state.ShareSupply.String(),
		LiabilityRatio:        state.LiabilityRatio,
		SharePrice:            state.SharePrice.String(),
		LastExpandTime:        state.LastExpandTime,
		LastContractTime:      state.LastContractTime,
	})
}

func (h *handler) ListEvents(c *gin.Context) {
	after, err := strconv.ParseInt(c.DefaultQuery("after", "0"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid after cursor")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		respondBadRequest(c, "Invalid limit")
		return
	}

	rows, err := h.engine.Events(c.Request.Context(), after, limit)
	if err != nil {
		respondInternalError(c, err, "Failed to list events")
		return
	}

	resp := EventListResponse{Events: make([]EventResponse, 0, len(rows)), NextCursor: after}
	for _, row := range rows {
		ev := EventResponse{
			Cursor:     row.Cursor,
			EventID:    row.EventID,
			Type:       row.Type,
			From:       row.FromAccount,
			To:         row.ToAccount,
			Value:      row.Value,
			OccurredAt: row.OccurredAt.UnixMilli(),
		}
		if len(row.Meta) > 0 {
			var meta any
			if err := json.Unmarshal(row.Meta, &meta); err == nil {
				ev.Meta = meta
			}
		}
		resp.Events = append(resp.Events, ev)
		resp.NextCursor = row.Cursor
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	caller, ok := parseAccountField(c, req.Caller, "caller")
	if !ok {
		return
	}
	to, ok := parseAccountField(c, req.To, "to")
	if !ok {
		return
	}
	value, ok := parseAmount(c, req.Value, "value")
	if !ok {
		return
	}

	var err error
	if req.From != "" {
		var from domain.Account
		from, ok = parseAccountField(c, req.From, "from")
		if !ok {
			return
		}
		err = h.engine.TransferFrom(c.Request.Context(), caller, from, to, value)
	} else {
		err = h.engine.Transfer(c.Request.Context(), caller, to, value)
	}
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) Approve(c *gin.Context) {
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	caller, ok := parseAccountField(c, req.Caller, "caller")
	if !ok {
		return
	}
	spender, ok := parseAccountField(c, req.Spender, "spender")
	if !ok {
		return
	}
	value, ok := parseAmount(c, req.Value, "value")
	if !ok {
		return
	}
	if err := h.engine.Approve(c.Request.Context(), caller, spender, value); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) Mint(c *gin.Context) {
	h.supplyChange(c, h.engine.Mint)
}

func (h *handler) Burn(c *gin.Context) {
	h.supplyChange(c, h.engine.Burn)
}

func (h *handler) SetLock(c *gin.Context) {
	var req LockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	caller, ok := parseAccountField(c, req.Caller, "caller")
	if !ok {
		return
	}
	account, ok := parseAccountField(c, req.Account, "account")
	if !ok {
		return
	}
	amount, ok := parseAmount(c, req.Amount, "amount")
	if !ok {
		return
	}
	if err := h.engine.SetLock(c.Request.Context(), caller, account, req.UntilEpoch, amount); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) AddLiquidity(c *gin.Context) {
	var req LiquidityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	caller, ok := parseAccountField(c, req.Caller, "caller")
	if !ok {
		return
	}
	amount, ok := parseAmount(c, req.CollateralAmount, "collateral_amount")
	if !ok {
		return
	}
	out, err := h.engine.AddLiquidity(c.Request.Context(), caller, amount)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, LiquidityResponse{
		ShareTokens:     out.ShareTokens.String(),
		SyntheticTokens: out.SyntheticTokens.String(),
	})
}

func (h *handler) RemoveLiquidity(c *gin.Context) {
	var req RemoveLiquidityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	caller, ok := parseAccountField(c, req.Caller, "caller")
	if !ok {
		return
	}
	amount, ok := parseAmount(c, req.ShareAmount, "share_amount")
	if !ok {
		return
	}
	out, err := h.engine.RemoveLiquidity(c.Request.Context(), caller, amount)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, RemoveLiquidityResponse{CollateralAmount: out.String()})
}

func (h *handler) DepositRiskReserve(c *gin.Context) {
	var req RiskReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	caller, ok := parseAccountField(c, req.Caller, "caller")
	if !ok {
		return
	}
	amount, ok := parseAmount(c, req.Amount, "amount")
	if !ok {
		return
	}
	if err := h.engine.DepositRiskReserve(c.Request.Context(), caller, amount); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) Expand(c *gin.Context) {
	h.rebase(c, h.engine.Expand)
}

func (h *handler) Contract(c *gin.Context) {
	h.rebase(c, h.engine.Contract)
}

func (h *handler) UpdatePrices(c *gin.Context) {
	var req PriceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	caller, ok := parseAccountField(c, req.Caller, "caller")
	if !ok {
		return
	}
	colPrice, ok := parseAmount(c, req.CollateralPrice, "collateral_price")
	if !ok {
		return
	}
	synPrice, ok := parseAmount(c, req.SyntheticPrice, "synthetic_price")
	if !ok {
		return
	}
	if err := h.engine.UpdatePrices(c.Request.Context(), caller, colPrice, synPrice); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type supplyChangeFunc func(ctx context.Context, caller, account domain.Account, amount *big.Int) error

func (h *handler) supplyChange(c *gin.Context, fn supplyChangeFunc) {
	var req SupplyChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	caller, ok := parseAccountField(c, req.Caller, "caller")
	if !ok {
		return
	}
	account, ok := parseAccountField(c, req.Account, "account")
	if !ok {
		return
	}
	amount, ok := parseAmount(c, req.Amount, "amount")
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), caller, account, amount); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) rebase(c *gin.Context, fn func(ctx context.Context, caller domain.Account) (reserve.Rebase, error)) {
	var req RebaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	caller, ok := parseAccountField(c, req.Caller, "caller")
	if !ok {
		return
	}
	out, err := fn(c.Request.Context(), caller)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, RebaseResponse{
		SyntheticMoved:  out.SyntheticMoved.String(),
		CollateralMoved: out.CollateralMoved.String(),
		ReserveUsed:     out.ReserveUsed.String(),
		RiskReserveUsed: out.RiskReserveUsed.String(),
		Issued:          out.Issued.String(),
	})
}

func parseAccountParam(c *gin.Context, s string) (domain.Account, bool) {
	account, ok := domain.ParseAccount(s)
	if !ok {
		respondBadRequest(c, "Invalid account address", s)
		return domain.Account{}, false
	}
	return account, true
}

func parseAccountField(c *gin.Context, s, field string) (domain.Account, bool) {
	account, ok := domain.ParseAccount(s)
	if !ok {
		respondBadRequest(c, "Invalid account address in "+field, s)
		return domain.Account{}, false
	}
	return account, true
}

func parseAmount(c *gin.Context, s, field string) (*big.Int, bool) {
	v, ok := fixedpoint.Parse(s)
	if !ok {
		respondBadRequest(c, "Invalid amount in "+field, s)
		return nil, false
	}
	return v, true
}
