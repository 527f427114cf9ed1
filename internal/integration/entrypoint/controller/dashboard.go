package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/village-banking/backend/internal/application/usecase/pot"
	"github.com/village-banking/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles pot and dashboard reporting endpoints. All
// figures are recomputed from the ledger on every request.
type DashboardController struct {
	potSummaryUseCase *pot.GetPotSummaryUseCase
	socialFundUseCase *pot.GetSocialFundSummaryUseCase
	statsUseCase      *pot.GetDashboardStatsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	potSummaryUseCase *pot.GetPotSummaryUseCase,
	socialFundUseCase *pot.GetSocialFundSummaryUseCase,
	statsUseCase *pot.GetDashboardStatsUseCase,
) *DashboardController {
	return &DashboardController{
		potSummaryUseCase: potSummaryUseCase,
		socialFundUseCase: socialFundUseCase,
		statsUseCase:      statsUseCase,
	}
}

// Pots handles GET /pots requests.
func (c *DashboardController) Pots(ctx *gin.Context) {
	output, err := c.potSummaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute pot summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPotSummaryResponse(output.Pots))
}

// SocialFund handles GET /social-fund/summary requests.
func (c *DashboardController) SocialFund(ctx *gin.Context) {
	output, err := c.socialFundUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute social fund summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSocialFundResponse(output.Summary))
}

// Stats handles GET /dashboard/stats requests.
func (c *DashboardController) Stats(ctx *gin.Context) {
	output, err := c.statsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard stats",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardStatsResponse(output.Stats))
}
