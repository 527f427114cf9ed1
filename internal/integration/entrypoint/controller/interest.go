package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/application/usecase/loan"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
	"github.com/village-banking/backend/internal/integration/entrypoint/dto"
)

// InterestController exposes the interest engine for what-if previews.
type InterestController struct {
	previewUseCase *loan.PreviewInterestUseCase
}

// NewInterestController creates a new interest controller instance.
func NewInterestController(previewUseCase *loan.PreviewInterestUseCase) *InterestController {
	return &InterestController{
		previewUseCase: previewUseCase,
	}
}

// Preview handles POST /interest/preview requests.
func (c *InterestController) Preview(ctx *gin.Context) {
	var req dto.PreviewInterestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
		})
		return
	}

	rate, err := decimal.NewFromString(req.RatePercent)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid rate format",
		})
		return
	}

	output, err := c.previewUseCase.Execute(ctx.Request.Context(), loan.PreviewInterestInput{
		Amount:       amount,
		RatePercent:  rate,
		InterestKind: entity.InterestKind(req.InterestKind),
		Periods:      req.Periods,
	})
	if err != nil {
		var loanErr *domainerror.LoanError
		if errors.As(err, &loanErr) {
			ctx.JSON(statusForErrorCode(string(loanErr.Code)), dto.ErrorResponse{
				Error: loanErr.Message,
				Code:  string(loanErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInterestPreviewResponse(output.Breakdown))
}
