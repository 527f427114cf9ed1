package loan

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
)

// ListLoansInput represents the input for listing loans.
type ListLoansInput struct {
	Family   entity.LoanFamily
	MemberID *uuid.UUID // Optional member filter
}

// ListLoansOutput represents the output of listing loans.
type ListLoansOutput struct {
	Loans []*entity.Loan
}

// ListLoansUseCase handles listing of the loan book.
type ListLoansUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewListLoansUseCase creates a new ListLoansUseCase instance.
func NewListLoansUseCase(loanRepo adapter.LoanRepository) *ListLoansUseCase {
	return &ListLoansUseCase{loanRepo: loanRepo}
}

// Execute retrieves loans, optionally filtered by member.
func (uc *ListLoansUseCase) Execute(ctx context.Context, input ListLoansInput) (*ListLoansOutput, error) {
	var (
		loans []*entity.Loan
		err   error
	)

	if input.MemberID != nil {
		loans, err = uc.loanRepo.FindByMember(ctx, input.Family, *input.MemberID)
	} else {
		loans, err = uc.loanRepo.FindAll(ctx, input.Family)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	return &ListLoansOutput{Loans: loans}, nil
}

// GetLoanInput represents the input for retrieving a loan.
type GetLoanInput struct {
	Family entity.LoanFamily
	LoanID uuid.UUID
}

// GetLoanOutput represents the output of retrieving a loan.
type GetLoanOutput struct {
	Loan *entity.Loan
}

// GetLoanUseCase handles retrieval of a single loan.
type GetLoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewGetLoanUseCase creates a new GetLoanUseCase instance.
func NewGetLoanUseCase(loanRepo adapter.LoanRepository) *GetLoanUseCase {
	return &GetLoanUseCase{loanRepo: loanRepo}
}

// Execute retrieves the loan.
func (uc *GetLoanUseCase) Execute(ctx context.Context, input GetLoanInput) (*GetLoanOutput, error) {
	loan, err := uc.loanRepo.FindByID(ctx, input.Family, input.LoanID)
	if err != nil {
		if errors.Is(err, domainerror.ErrLoanNotFound) {
			return nil, domainerror.NewLoanError(
				domainerror.ErrCodeLoanNotFound,
				"loan not found",
				domainerror.ErrLoanNotFound,
			)
		}
		return nil, err
	}

	return &GetLoanOutput{Loan: loan}, nil
}
