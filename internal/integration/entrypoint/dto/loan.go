package dto

import (
	"time"

	"github.com/village-banking/backend/internal/domain/entity"
	"github.com/village-banking/backend/internal/domain/valueobject"
)

// CreateLoanRequest represents the request body for a loan request.
type CreateLoanRequest struct {
	MemberID     string  `json:"member_id" binding:"required,uuid"`
	Amount       string  `json:"amount" binding:"required"`
	PeriodDays   int     `json:"period_days" binding:"required,gt=0"`
	InterestRate *string `json:"interest_rate,omitempty"`
	InterestKind *string `json:"interest_kind,omitempty" binding:"omitempty,oneof=flat_once linear compound"`
}

// MakePaymentRequest represents the request body for a loan repayment.
type MakePaymentRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// PenaliseLoanRequest represents the request body for a late penalty.
type PenaliseLoanRequest struct {
	Amount string `json:"amount" binding:"required"`
	Reason string `json:"reason,omitempty"`
}

// CheckEligibilityRequest represents the request body for an eligibility check.
type CheckEligibilityRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
	Amount   string `json:"amount" binding:"required"`
}

// PreviewInterestRequest represents the request body for an interest preview.
type PreviewInterestRequest struct {
	Amount       string `json:"amount" binding:"required"`
	RatePercent  string `json:"rate_percent" binding:"required"`
	InterestKind string `json:"interest_kind" binding:"required,oneof=flat_once linear compound"`
	Periods      int    `json:"periods" binding:"required,gt=0"`
}

// LoanResponse represents a single loan in API responses.
type LoanResponse struct {
	ID              string    `json:"id"`
	MemberID        string    `json:"member_id"`
	PrincipalAmount string    `json:"principal_amount"`
	InterestRate    string    `json:"interest_rate"`
	InterestKind    string    `json:"interest_kind"`
	InterestAmount  string    `json:"interest_amount"`
	TotalRepayment  string    `json:"total_repayment"`
	AmountPaid      string    `json:"amount_paid"`
	Outstanding     string    `json:"outstanding"`
	Status          string    `json:"status"`
	RequestDate     string    `json:"request_date"`
	ApprovalDate    *string   `json:"approval_date,omitempty"`
	DueDate         string    `json:"due_date"`
	RolloverCount   int       `json:"rollover_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LoanListResponse represents the response for listing loans.
type LoanListResponse struct {
	Loans []LoanResponse `json:"loans"`
}

// PaymentResponse represents the response for a loan repayment.
type PaymentResponse struct {
	Loan          LoanResponse `json:"loan"`
	AmountApplied string       `json:"amount_applied"`
	PaidOff       bool         `json:"paid_off"`
}

// EligibilityResponse represents the response for an eligibility check.
type EligibilityResponse struct {
	Eligible  bool   `json:"eligible"`
	MaxAmount string `json:"max_amount"`
	Reason    string `json:"reason,omitempty"`
}

// InterestPreviewResponse represents the response for an interest preview.
type InterestPreviewResponse struct {
	Principal string `json:"principal"`
	Interest  string `json:"interest"`
	Total     string `json:"total"`
	Rate      string `json:"rate"`
	Kind      string `json:"kind"`
}

// ScheduleRowResponse represents one period of a repayment schedule.
type ScheduleRowResponse struct {
	Period    int    `json:"period"`
	DueDate   string `json:"due_date"`
	Principal string `json:"principal"`
	Interest  string `json:"interest"`
	Payment   string `json:"payment"`
	Balance   string `json:"balance"`
}

// ScheduleResponse represents the response for a loan repayment schedule.
type ScheduleResponse struct {
	LoanID string                `json:"loan_id"`
	Rows   []ScheduleRowResponse `json:"rows"`
}

// ToLoanResponse converts a domain Loan entity to a LoanResponse DTO.
func ToLoanResponse(l *entity.Loan) LoanResponse {
	response := LoanResponse{
		ID:              l.ID.String(),
		MemberID:        l.MemberID.String(),
		PrincipalAmount: l.PrincipalAmount.String(),
		InterestRate:    l.InterestRate.String(),
		InterestKind:    string(l.InterestKind),
		InterestAmount:  l.InterestAmount.String(),
		TotalRepayment:  l.TotalRepayment.String(),
		AmountPaid:      l.AmountPaid.String(),
		Outstanding:     l.Outstanding().String(),
		Status:          string(l.Status),
		RequestDate:     l.RequestDate.Format(dateLayout),
		DueDate:         l.DueDate.Format(dateLayout),
		RolloverCount:   l.RolloverCount,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}

	if l.ApprovalDate != nil {
		dateStr := l.ApprovalDate.Format(dateLayout)
		response.ApprovalDate = &dateStr
	}

	return response
}

// ToLoanListResponse converts a list of Loan entities to a LoanListResponse.
func ToLoanListResponse(loans []*entity.Loan) LoanListResponse {
	responses := make([]LoanResponse, len(loans))
	for i, l := range loans {
		responses[i] = ToLoanResponse(l)
	}
	return LoanListResponse{
		Loans: responses,
	}
}

// ToInterestPreviewResponse converts an InterestBreakdown to an InterestPreviewResponse DTO.
func ToInterestPreviewResponse(b valueobject.InterestBreakdown) InterestPreviewResponse {
	return InterestPreviewResponse{
		Principal: b.Principal.String(),
		Interest:  b.Interest.String(),
		Total:     b.Total.String(),
		Rate:      b.Rate.String(),
		Kind:      string(b.Kind),
	}
}

// ToScheduleResponse converts schedule rows to a ScheduleResponse DTO.
func ToScheduleResponse(loan *entity.Loan, rows []valueobject.ScheduleRow) ScheduleResponse {
	rowResponses := make([]ScheduleRowResponse, len(rows))
	for i, row := range rows {
		rowResponses[i] = ScheduleRowResponse{
			Period:    row.Period,
			DueDate:   row.DueDate.Format(dateLayout),
			Principal: row.Principal.String(),
			Interest:  row.Interest.String(),
			Payment:   row.Payment.String(),
			Balance:   row.Balance.String(),
		}
	}
	return ScheduleResponse{
		LoanID: loan.ID.String(),
		Rows:   rowResponses,
	}
}
