package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/application/usecase/loan"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
	"github.com/village-banking/backend/internal/integration/entrypoint/dto"
)

// LoanController handles loan book endpoints for one loan family. The router
// mounts two instances: one for main loans and one for social fund loans.
type LoanController struct {
	family               entity.LoanFamily
	listUseCase          *loan.ListLoansUseCase
	getUseCase           *loan.GetLoanUseCase
	createUseCase        *loan.CreateLoanUseCase
	eligibilityUseCase   *loan.CheckEligibilityUseCase
	approveUseCase       *loan.ApproveLoanUseCase
	paymentUseCase       *loan.MakePaymentUseCase
	penaliseUseCase      *loan.PenaliseLoanUseCase
	rolloverUseCase      *loan.RolloverLoanUseCase
	markDefaultedUseCase *loan.MarkDefaultedUseCase
	scheduleUseCase      *loan.GetScheduleUseCase
}

// NewLoanController creates a new loan controller instance bound to a family.
func NewLoanController(
	family entity.LoanFamily,
	listUseCase *loan.ListLoansUseCase,
	getUseCase *loan.GetLoanUseCase,
	createUseCase *loan.CreateLoanUseCase,
	eligibilityUseCase *loan.CheckEligibilityUseCase,
	approveUseCase *loan.ApproveLoanUseCase,
	paymentUseCase *loan.MakePaymentUseCase,
	penaliseUseCase *loan.PenaliseLoanUseCase,
	rolloverUseCase *loan.RolloverLoanUseCase,
	markDefaultedUseCase *loan.MarkDefaultedUseCase,
	scheduleUseCase *loan.GetScheduleUseCase,
) *LoanController {
	return &LoanController{
		family:               family,
		listUseCase:          listUseCase,
		getUseCase:           getUseCase,
		createUseCase:        createUseCase,
		eligibilityUseCase:   eligibilityUseCase,
		approveUseCase:       approveUseCase,
		paymentUseCase:       paymentUseCase,
		penaliseUseCase:      penaliseUseCase,
		rolloverUseCase:      rolloverUseCase,
		markDefaultedUseCase: markDefaultedUseCase,
		scheduleUseCase:      scheduleUseCase,
	}
}

// List handles GET requests for the loan book. An optional member_id query
// parameter filters to one borrower.
func (c *LoanController) List(ctx *gin.Context) {
	input := loan.ListLoansInput{Family: c.family}

	if memberIDStr := ctx.Query("member_id"); memberIDStr != "" {
		memberID, err := uuid.Parse(memberIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid member_id query parameter",
			})
			return
		}
		input.MemberID = &memberID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanListResponse(output.Loans))
}

// Get handles GET /:id requests.
func (c *LoanController) Get(ctx *gin.Context) {
	loanID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), loan.GetLoanInput{
		Family: c.family,
		LoanID: loanID,
	})
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanResponse(output.Loan))
}

// Create handles POST requests for a new loan request.
func (c *LoanController) Create(ctx *gin.Context) {
	var req dto.CreateLoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID format",
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

	input := loan.CreateLoanInput{
		Family:     c.family,
		MemberID:   memberID,
		Amount:     amount,
		PeriodDays: req.PeriodDays,
	}

	if req.InterestRate != nil {
		rate, err := decimal.NewFromString(*req.InterestRate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid interest rate format",
			})
			return
		}
		input.InterestRate = &rate
	}

	if req.InterestKind != nil {
		kind := entity.InterestKind(*req.InterestKind)
		input.InterestKind = &kind
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLoanResponse(output.Loan))
}

// CheckEligibility handles POST /eligibility requests. A rejection is a 200
// with eligible=false, not an error.
func (c *LoanController) CheckEligibility(ctx *gin.Context) {
	var req dto.CheckEligibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID format",
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

	output, err := c.eligibilityUseCase.Execute(ctx.Request.Context(), loan.CheckEligibilityInput{
		Family:   c.family,
		MemberID: memberID,
		Amount:   amount,
	})
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EligibilityResponse{
		Eligible:  output.Eligible,
		MaxAmount: output.MaxAmount.String(),
		Reason:    output.Reason,
	})
}

// Approve handles POST /:id/approve requests.
func (c *LoanController) Approve(ctx *gin.Context) {
	loanID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.approveUseCase.Execute(ctx.Request.Context(), loan.ApproveLoanInput{
		Family: c.family,
		LoanID: loanID,
	})
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanResponse(output.Loan))
}

// MakePayment handles POST /:id/payments requests.
func (c *LoanController) MakePayment(ctx *gin.Context) {
	loanID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.MakePaymentRequest
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

	output, err := c.paymentUseCase.Execute(ctx.Request.Context(), loan.MakePaymentInput{
		Family: c.family,
		LoanID: loanID,
		Amount: amount,
	})
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PaymentResponse{
		Loan:          dto.ToLoanResponse(output.Loan),
		AmountApplied: output.AmountApplied.String(),
		PaidOff:       output.PaidOff,
	})
}

// Penalise handles POST /:id/penalty requests.
func (c *LoanController) Penalise(ctx *gin.Context) {
	loanID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.PenaliseLoanRequest
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

	output, err := c.penaliseUseCase.Execute(ctx.Request.Context(), loan.PenaliseLoanInput{
		Family: c.family,
		LoanID: loanID,
		Amount: amount,
		Reason: req.Reason,
	})
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanResponse(output.Loan))
}

// Rollover handles POST /:id/rollover requests.
func (c *LoanController) Rollover(ctx *gin.Context) {
	loanID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.rolloverUseCase.Execute(ctx.Request.Context(), loan.RolloverLoanInput{
		Family: c.family,
		LoanID: loanID,
	})
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanResponse(output.Loan))
}

// MarkDefaulted handles POST /:id/default requests.
func (c *LoanController) MarkDefaulted(ctx *gin.Context) {
	loanID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.markDefaultedUseCase.Execute(ctx.Request.Context(), loan.MarkDefaultedInput{
		Family: c.family,
		LoanID: loanID,
	})
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanResponse(output.Loan))
}

// Schedule handles GET /:id/schedule requests.
func (c *LoanController) Schedule(ctx *gin.Context) {
	loanID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.scheduleUseCase.Execute(ctx.Request.Context(), loan.GetScheduleInput{
		Family: c.family,
		LoanID: loanID,
	})
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScheduleResponse(output.Loan, output.Rows))
}

// handleLoanError maps loan errors to HTTP responses. Loan operations load
// members and settings too, so those error types surface here as well.
func (c *LoanController) handleLoanError(ctx *gin.Context, err error) {
	var loanErr *domainerror.LoanError
	if errors.As(err, &loanErr) {
		ctx.JSON(statusForErrorCode(string(loanErr.Code)), dto.ErrorResponse{
			Error: loanErr.Message,
			Code:  string(loanErr.Code),
		})
		return
	}

	var memberErr *domainerror.MemberError
	if errors.As(err, &memberErr) {
		ctx.JSON(statusForErrorCode(string(memberErr.Code)), dto.ErrorResponse{
			Error: memberErr.Message,
			Code:  string(memberErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
