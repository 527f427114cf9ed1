package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/application/usecase/transaction"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
	"github.com/village-banking/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles ledger endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	recordUseCase *transaction.RecordTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	recordUseCase *transaction.RecordTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		recordUseCase: recordUseCase,
	}
}

// List handles GET /transactions requests. An optional member_id query
// parameter filters the ledger to one member.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{}

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
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Record handles POST /transactions requests.
func (c *TransactionController) Record(ctx *gin.Context) {
	var req dto.RecordTransactionRequest
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

	input := transaction.RecordTransactionInput{
		MemberID:    memberID,
		Type:        entity.TransactionType(req.Type),
		Amount:      amount,
		Description: req.Description,
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// handleTransactionError maps ledger errors to HTTP responses. Record touches
// the member register too, so member errors surface here as well.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(statusForErrorCode(string(txnErr.Code)), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
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
