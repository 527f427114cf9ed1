package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/village-banking/backend/internal/application/usecase/cycle"
	domainerror "github.com/village-banking/backend/internal/domain/error"
	"github.com/village-banking/backend/internal/integration/entrypoint/dto"
)

// CycleController handles accounting cycle endpoints.
type CycleController struct {
	listUseCase     *cycle.ListCyclesUseCase
	activeUseCase   *cycle.GetActiveCycleUseCase
	createUseCase   *cycle.CreateCycleUseCase
	closeUseCase    *cycle.CloseCycleUseCase
	shareOutUseCase *cycle.ShareOutPreviewUseCase
}

// NewCycleController creates a new cycle controller instance.
func NewCycleController(
	listUseCase *cycle.ListCyclesUseCase,
	activeUseCase *cycle.GetActiveCycleUseCase,
	createUseCase *cycle.CreateCycleUseCase,
	closeUseCase *cycle.CloseCycleUseCase,
	shareOutUseCase *cycle.ShareOutPreviewUseCase,
) *CycleController {
	return &CycleController{
		listUseCase:     listUseCase,
		activeUseCase:   activeUseCase,
		createUseCase:   createUseCase,
		closeUseCase:    closeUseCase,
		shareOutUseCase: shareOutUseCase,
	}
}

// List handles GET /cycles requests.
func (c *CycleController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCycleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCycleListResponse(output.Cycles))
}

// GetActive handles GET /cycles/active requests.
func (c *CycleController) GetActive(ctx *gin.Context) {
	output, err := c.activeUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCycleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCycleResponse(output.Cycle))
}

// Create handles POST /cycles requests.
func (c *CycleController) Create(ctx *gin.Context) {
	var req dto.CreateCycleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format, expected YYYY-MM-DD",
		})
		return
	}

	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end date format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), cycle.CreateCycleInput{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleCycleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCycleResponse(output.Cycle))
}

// Close handles POST /cycles/:id/close requests.
func (c *CycleController) Close(ctx *gin.Context) {
	cycleID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.closeUseCase.Execute(ctx.Request.Context(), cycle.CloseCycleInput{CycleID: cycleID})
	if err != nil {
		c.handleCycleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CloseCycleResponse{
		Cycle:      dto.ToCycleResponse(output.Cycle),
		ZeroShares: output.ZeroShares,
	})
}

// ShareOut handles GET /cycles/:id/share-out requests.
func (c *CycleController) ShareOut(ctx *gin.Context) {
	cycleID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.shareOutUseCase.Execute(ctx.Request.Context(), cycle.ShareOutPreviewInput{CycleID: cycleID})
	if err != nil {
		c.handleCycleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShareOutResponse(output.Cycle, output.Rows, output.TotalDividend.String()))
}

// handleCycleError maps cycle errors to HTTP responses.
func (c *CycleController) handleCycleError(ctx *gin.Context, err error) {
	var cycleErr *domainerror.CycleError
	if errors.As(err, &cycleErr) {
		ctx.JSON(statusForErrorCode(string(cycleErr.Code)), dto.ErrorResponse{
			Error: cycleErr.Message,
			Code:  string(cycleErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
