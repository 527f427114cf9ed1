package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanStatus represents the lifecycle state of a loan.
type LoanStatus string

const (
	LoanStatusPending   LoanStatus = "pending"
	LoanStatusActive    LoanStatus = "active"
	LoanStatusPaid      LoanStatus = "paid"
	LoanStatusDefaulted LoanStatus = "defaulted"
)

// InterestKind selects the interest semantics applied to a loan. A single
// enumeration is shared by main loans and social loans.
type InterestKind string

const (
	// InterestKindFlatOnce charges principal * rate/100 once, regardless of term.
	InterestKindFlatOnce InterestKind = "flat_once"
	// InterestKindLinear charges principal * rate/100 per period.
	InterestKindLinear InterestKind = "linear"
	// InterestKindCompound compounds principal at rate/100 once per period.
	InterestKindCompound InterestKind = "compound"
)

// ValidInterestKind reports whether k is a known interest semantics.
func ValidInterestKind(k InterestKind) bool {
	return k == InterestKindFlatOnce || k == InterestKindLinear || k == InterestKindCompound
}

// LoanFamily distinguishes the pot a loan draws from.
type LoanFamily string

const (
	LoanFamilyMain   LoanFamily = "main"   // backed by the savings pot
	LoanFamilySocial LoanFamily = "social" // backed by the social fund
)

// Loan represents a loan issued against one of the group pots. Main loans and
// social loans share this structure; Family selects the funding pot.
type Loan struct {
	ID              uuid.UUID
	MemberID        uuid.UUID
	Family          LoanFamily
	PrincipalAmount decimal.Decimal
	InterestRate    decimal.Decimal // Percent, e.g. 10 means 10%
	InterestKind    InterestKind
	InterestAmount  decimal.Decimal
	TotalRepayment  decimal.Decimal // Principal + interest; grows on penalty
	AmountPaid      decimal.Decimal
	Status          LoanStatus
	RequestDate     time.Time
	ApprovalDate    *time.Time
	DueDate         time.Time
	RolloverCount   int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewLoan creates a pending loan request. Interest figures are computed by the
// caller via the interest engine before persisting.
func NewLoan(
	memberID uuid.UUID,
	family LoanFamily,
	principal decimal.Decimal,
	rate decimal.Decimal,
	kind InterestKind,
	interest decimal.Decimal,
	requestDate time.Time,
	dueDate time.Time,
) *Loan {
	now := time.Now().UTC()

	return &Loan{
		ID:              uuid.New(),
		MemberID:        memberID,
		Family:          family,
		PrincipalAmount: principal,
		InterestRate:    rate,
		InterestKind:    kind,
		InterestAmount:  interest,
		TotalRepayment:  principal.Add(interest),
		AmountPaid:      decimal.Zero,
		Status:          LoanStatusPending,
		RequestDate:     requestDate,
		DueDate:         dueDate,
		RolloverCount:   0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Outstanding returns the unpaid balance of the loan.
func (l *Loan) Outstanding() decimal.Decimal {
	return l.TotalRepayment.Sub(l.AmountPaid)
}

// IsOverdue reports whether an active loan is past its due date.
func (l *Loan) IsOverdue(now time.Time) bool {
	return l.Status == LoanStatusActive && l.DueDate.Before(now)
}

// IsSettled reports whether the loan has reached a terminal state.
func (l *Loan) IsSettled() bool {
	return l.Status == LoanStatusPaid || l.Status == LoanStatusDefaulted
}
