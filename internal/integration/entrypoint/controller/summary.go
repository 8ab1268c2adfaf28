package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kakeibo/backend/internal/application/usecase/summary"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
	"github.com/kakeibo/backend/internal/integration/entrypoint/dto"
	"github.com/kakeibo/backend/internal/integration/entrypoint/middleware"
)

// SummaryController handles the budget overview endpoint.
type SummaryController struct {
	getOverviewUseCase *summary.GetOverviewUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(getOverviewUseCase *summary.GetOverviewUseCase) *SummaryController {
	return &SummaryController{
		getOverviewUseCase: getOverviewUseCase,
	}
}

// GetOverview handles GET /summary requests. The optional year query
// parameter defaults to the current year.
func (c *SummaryController) GetOverview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not resolved",
		})
		return
	}

	year := time.Now().UTC().Year()
	if yearParam := ctx.Query("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil || parsed < 1970 || parsed > 9999 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year parameter",
			})
			return
		}
		year = parsed
	}

	input := summary.GetOverviewInput{
		UserID: userID,
		Year:   year,
	}

	output, err := c.getOverviewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
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
		return
	}

	ctx.JSON(http.StatusOK, output)
}
