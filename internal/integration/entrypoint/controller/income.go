package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/application/usecase/income"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
	"github.com/kakeibo/backend/internal/integration/entrypoint/dto"
	"github.com/kakeibo/backend/internal/integration/entrypoint/middleware"
)

// IncomeController handles income profile endpoints.
type IncomeController struct {
	updateUseCase *income.UpdateIncomeUseCase
	getUseCase    *income.GetIncomeUseCase
	summaryCache  adapter.SummaryCache
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	updateUseCase *income.UpdateIncomeUseCase,
	getUseCase *income.GetIncomeUseCase,
	summaryCache adapter.SummaryCache,
) *IncomeController {
	return &IncomeController{
		updateUseCase: updateUseCase,
		getUseCase:    getUseCase,
		summaryCache:  summaryCache,
	}
}

// Get handles GET /income requests.
func (c *IncomeController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not resolved",
		})
		return
	}

	input := income.GetIncomeInput{
		UserID: userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	response := dto.ToIncomeProfileResponse(output.Profile)
	ctx.JSON(http.StatusOK, response)
}

// Update handles PUT /income requests. The income profile is a singleton
// per user, so the same endpoint creates and replaces it.
func (c *IncomeController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not resolved",
		})
		return
	}

	var req dto.UpdateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingIncomeFields),
		})
		return
	}

	input := income.UpdateIncomeInput{
		UserID:             userID,
		GrossAmount:        req.GrossAmount,
		Period:             entity.IncomePeriod(req.Period),
		Currency:           req.Currency,
		TaxRatePercent:     req.TaxRatePercent,
		SavingsRatePercent: req.SavingsRatePercent,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	c.invalidateSummary(ctx)

	response := dto.ToIncomeProfileResponse(output.Profile)
	ctx.JSON(http.StatusOK, response)
}

func (c *IncomeController) invalidateSummary(ctx *gin.Context) {
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

// handleIncomeError maps income errors to HTTP responses.
func (c *IncomeController) handleIncomeError(ctx *gin.Context, err error) {
	var incomeErr *domainerror.IncomeError
	if errors.As(err, &incomeErr) {
		statusCode := c.getStatusCodeForIncomeError(incomeErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: incomeErr.Message,
			Code:  string(incomeErr.Code),
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

// getStatusCodeForIncomeError maps income error codes to HTTP status codes.
func (c *IncomeController) getStatusCodeForIncomeError(code domainerror.IncomeErrorCode) int {
	switch code {
	case domainerror.ErrCodeIncomeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidGrossAmount,
		domainerror.ErrCodeInvalidIncomePeriod,
		domainerror.ErrCodeInvalidTaxRate,
		domainerror.ErrCodeInvalidSavingsRate,
		domainerror.ErrCodeMissingIncomeFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
