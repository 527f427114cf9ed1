package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/domain/entity"
)

// LoanRepository defines the interface for loan persistence operations. Main
// loans and social loans share the store; the family argument selects between
// them.
type LoanRepository interface {
	// Create persists a new loan request.
	Create(ctx context.Context, loan *entity.Loan) error

	// FindByID retrieves a loan by its ID within a family.
	FindByID(ctx context.Context, family entity.LoanFamily, id uuid.UUID) (*entity.Loan, error)

	// FindAll retrieves all loans in a family, newest first.
	FindAll(ctx context.Context, family entity.LoanFamily) ([]*entity.Loan, error)

	// FindByMember retrieves all of a member's loans in a family.
	FindByMember(ctx context.Context, family entity.LoanFamily, memberID uuid.UUID) ([]*entity.Loan, error)

	// Update persists changes to an existing loan.
	Update(ctx context.Context, loan *entity.Loan) error

	// UpdateGuarded persists the loan only if its stored status still equals
	// expected. Returns domain ErrLoanStateChanged when the guard fails, which
	// prevents double-approval and double-payment races.
	UpdateGuarded(ctx context.Context, loan *entity.Loan, expected entity.LoanStatus) error

	// OutstandingByMember returns the member's total unpaid balance across
	// active loans in a family.
	OutstandingByMember(ctx context.Context, family entity.LoanFamily, memberID uuid.UUID) (decimal.Decimal, error)

	// SumPrincipalByStatus returns the total principal of loans in the given states.
	SumPrincipalByStatus(ctx context.Context, family entity.LoanFamily, statuses ...entity.LoanStatus) (decimal.Decimal, error)

	// SumInterestByStatus returns the total interest of loans in the given states.
	SumInterestByStatus(ctx context.Context, family entity.LoanFamily, statuses ...entity.LoanStatus) (decimal.Decimal, error)

	// SumOutstandingByStatus returns the total unpaid balance of loans in the
	// given states.
	SumOutstandingByStatus(ctx context.Context, family entity.LoanFamily, statuses ...entity.LoanStatus) (decimal.Decimal, error)

	// CountByStatus returns the number of loans in the given states.
	CountByStatus(ctx context.Context, family entity.LoanFamily, statuses ...entity.LoanStatus) (int, error)

	// CountOverdue returns the number of active loans past their due date.
	CountOverdue(ctx context.Context, family entity.LoanFamily) (int, error)

	// ExistsByMember reports whether any loan references the member.
	ExistsByMember(ctx context.Context, memberID uuid.UUID) (bool, error)
}
