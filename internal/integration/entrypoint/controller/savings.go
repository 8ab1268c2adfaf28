package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/application/usecase/savings"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
	"github.com/kakeibo/backend/internal/integration/entrypoint/dto"
	"github.com/kakeibo/backend/internal/integration/entrypoint/middleware"
)

// SavingsController handles savings pool and goal endpoints.
type SavingsController struct {
	getLedgerUseCase    *savings.GetLedgerUseCase
	addToPoolUseCase    *savings.AddToPoolUseCase
	withdrawUseCase     *savings.WithdrawFromPoolUseCase
	allocateUseCase     *savings.AllocateUseCase
	returnToPoolUseCase *savings.ReturnToPoolUseCase
	createGoalUseCase   *savings.CreateGoalUseCase
	deleteGoalUseCase   *savings.DeleteGoalUseCase
	summaryCache        adapter.SummaryCache
}

// NewSavingsController creates a new savings controller instance.
func NewSavingsController(
	getLedgerUseCase *savings.GetLedgerUseCase,
	addToPoolUseCase *savings.AddToPoolUseCase,
	withdrawUseCase *savings.WithdrawFromPoolUseCase,
	allocateUseCase *savings.AllocateUseCase,
	returnToPoolUseCase *savings.ReturnToPoolUseCase,
	createGoalUseCase *savings.CreateGoalUseCase,
	deleteGoalUseCase *savings.DeleteGoalUseCase,
	summaryCache adapter.SummaryCache,
) *SavingsController {
	return &SavingsController{
		getLedgerUseCase:    getLedgerUseCase,
		addToPoolUseCase:    addToPoolUseCase,
		withdrawUseCase:     withdrawUseCase,
		allocateUseCase:     allocateUseCase,
		returnToPoolUseCase: returnToPoolUseCase,
		createGoalUseCase:   createGoalUseCase,
		deleteGoalUseCase:   deleteGoalUseCase,
		summaryCache:        summaryCache,
	}
}

// GetLedger handles GET /savings requests: the pool plus all goals.
func (c *SavingsController) GetLedger(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not resolved",
		})
		return
	}

	input := savings.GetLedgerInput{
		UserID: userID,
	}

	output, err := c.getLedgerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSavingsError(ctx, err)
		return
	}

	response := dto.ToLedgerResponse(output.Ledger)
	ctx.JSON(http.StatusOK, response)
}

// AddToPool handles POST /savings/pool/add requests.
func (c *SavingsController) AddToPool(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not resolved",
		})
		return
	}

	var req dto.PoolAmountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidTransferAmount),
		})
		return
	}

	input := savings.AddToPoolInput{
		UserID: userID,
		Amount: req.Amount,
	}

	output, err := c.addToPoolUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSavingsError(ctx, err)
		return
	}

	c.invalidateSummary(ctx)

	response := dto.ToPoolResponse(output.Pool)
	ctx.JSON(http.StatusOK, response)
}

// WithdrawFromPool handles POST /savings/pool/withdraw requests.
func (c *SavingsController) WithdrawFromPool(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not resolved",
		})
		return
	}

	var req dto.PoolAmountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidTransferAmount),
		})
		return
	}

	input := savings.WithdrawFromPoolInput{
		UserID: userID,
		Amount: req.Amount,
	}

	output, err := c.withdrawUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSavingsError(ctx, err)
		return
	}

	c.invalidateSummary(ctx)

	response := dto.ToPoolResponse(output.Pool)
	ctx.JSON(http.StatusOK, response)
}

// CreateGoal handles POST /savings/goals requests.
func (c *SavingsController) CreateGoal(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not resolved",
		})
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalName),
		})
		return
	}

	input := savings.CreateGoalInput{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
	}

	if req.Deadline != nil {
		deadline, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid deadline format, expected YYYY-MM-DD",
			})
			return
		}
		input.Deadline = &deadline
	}

	output, err := c.createGoalUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSavingsError(ctx, err)
		return
	}

	c.invalidateSummary(ctx)

	response := dto.ToGoalResponse(output.Goal)
	ctx.JSON(http.StatusCreated, response)
}

// Allocate handles POST /savings/goals/:id/allocate requests, moving money
// from the pool into the goal.
func (c *SavingsController) Allocate(ctx *gin.Context) {
	c.transfer(ctx, func(input savings.AllocateInput) error {
		return c.allocateUseCase.Execute(ctx.Request.Context(), input)
	})
}

// ReturnToPool handles POST /savings/goals/:id/return requests, moving money
// from the goal back into the pool.
func (c *SavingsController) ReturnToPool(ctx *gin.Context) {
	c.transfer(ctx, func(input savings.AllocateInput) error {
		return c.returnToPoolUseCase.Execute(ctx.Request.Context(), savings.ReturnToPoolInput(input))
	})
}

// transfer implements the shared request handling for both transfer
// directions. On success it responds with the refreshed ledger so the client
// sees the pool and goal balances move together.
func (c *SavingsController) transfer(ctx *gin.Context, execute func(savings.AllocateInput) error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not resolved",
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	var req dto.TransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidTransferAmount),
		})
		return
	}

	input := savings.AllocateInput{
		UserID: userID,
		GoalID: goalID,
		Amount: req.Amount,
	}

	if req.IdempotencyKey != nil {
		key, err := uuid.Parse(*req.IdempotencyKey)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid idempotency key format",
			})
			return
		}
		input.IdempotencyKey = &key
	}

	if err := execute(input); err != nil {
		c.handleSavingsError(ctx, err)
		return
	}

	c.invalidateSummary(ctx)

	output, err := c.getLedgerUseCase.Execute(ctx.Request.Context(), savings.GetLedgerInput{UserID: userID})
	if err != nil {
		c.handleSavingsError(ctx, err)
		return
	}

	response := dto.ToLedgerResponse(output.Ledger)
	ctx.JSON(http.StatusOK, response)
}

// DeleteGoal handles DELETE /savings/goals/:id requests. Any balance still
// allocated to the goal returns to the pool.
func (c *SavingsController) DeleteGoal(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not resolved",
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	input := savings.DeleteGoalInput{
		UserID: userID,
		GoalID: goalID,
	}

	if err := c.deleteGoalUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleSavingsError(ctx, err)
		return
	}

	c.invalidateSummary(ctx)

	ctx.Status(http.StatusNoContent)
}

func (c *SavingsController) invalidateSummary(ctx *gin.Context) {
	if c.summaryCache == nil {
		return
	}
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return
	}
	if err := c.summaryCache.Invalidate(ctx.Request.Context(), userID); err != nil {
		slog.Warn("summary cache invalidation failed", "error", err)
	}
}

// handleSavingsError maps savings errors to HTTP responses.
func (c *SavingsController) handleSavingsError(ctx *gin.Context, err error) {
	var savingsErr *domainerror.SavingsError
	if errors.As(err, &savingsErr) {
		statusCode := c.getStatusCodeForSavingsError(savingsErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: savingsErr.Message,
			Code:  string(savingsErr.Code),
		})
		return
	}

	var storeErr *domainerror.StoreError
	if errors.As(err, &storeErr) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Storage is temporarily unavailable",
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSavingsError maps savings error codes to HTTP status codes.
func (c *SavingsController) getStatusCodeForSavingsError(code domainerror.SavingsErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInsufficientFunds:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvalidTransferAmount,
		domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeMissingGoalName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
