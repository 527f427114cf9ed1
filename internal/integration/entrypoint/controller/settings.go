package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/application/usecase/settings"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
	"github.com/village-banking/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles group configuration endpoints.
type SettingsController struct {
	getUseCase    *settings.GetSettingsUseCase
	updateUseCase *settings.UpdateSettingsUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	updateUseCase *settings.UpdateSettingsUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// Update handles PATCH /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := settings.UpdateSettingsInput{
		LoanTermDays: req.LoanTermDays,
		Currency:     req.Currency,
		BankName:     req.BankName,
	}

	fields := []struct {
		raw  *string
		dest **decimal.Decimal
		name string
	}{
		{req.SharePrice, &input.SharePrice, "share_price"},
		{req.SocialContribution, &input.SocialContribution, "social_contribution"},
		{req.BirthdayContribution, &input.BirthdayContribution, "birthday_contribution"},
		{req.DefaultInterestRate, &input.DefaultInterestRate, "default_interest_rate"},
		{req.MaxLoanMultiplier, &input.MaxLoanMultiplier, "max_loan_multiplier"},
		{req.LatePenaltyRate, &input.LatePenaltyRate, "late_penalty_rate"},
		{req.AbsenteeFinePercentage, &input.AbsenteeFinePercentage, "absentee_fine_percentage"},
	}
	for _, f := range fields {
		if f.raw == nil {
			continue
		}
		value, err := decimal.NewFromString(*f.raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid decimal value for " + f.name,
			})
			return
		}
		*f.dest = &value
	}

	if req.DefaultInterestKind != nil {
		kind := entity.InterestKind(*req.DefaultInterestKind)
		input.DefaultInterestKind = &kind
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// handleSettingsError maps settings errors to HTTP responses.
func (c *SettingsController) handleSettingsError(ctx *gin.Context, err error) {
	var settingsErr *domainerror.SettingsError
	if errors.As(err, &settingsErr) {
		ctx.JSON(statusForErrorCode(string(settingsErr.Code)), dto.ErrorResponse{
			Error: settingsErr.Message,
			Code:  string(settingsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
