package cycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
	"github.com/village-banking/backend/internal/domain/valueobject"
)

// ShareOutPreviewInput represents the input for a share-out preview.
type ShareOutPreviewInput struct {
	CycleID uuid.UUID
}

// ShareOutPreviewOutput represents the per-member dividend rows of a closed
// cycle. The preview is a report; applying the payout is a separate decision
// recorded through dividend transactions.
type ShareOutPreviewOutput struct {
	Cycle         *entity.Cycle
	Rows          []valueobject.ShareOutRow
	TotalDividend decimal.Decimal
}

// ShareOutPreviewUseCase computes each member's dividend for a closed cycle.
type ShareOutPreviewUseCase struct {
	cycleRepo  adapter.CycleRepository
	memberRepo adapter.MemberRepository
}

// NewShareOutPreviewUseCase creates a new ShareOutPreviewUseCase instance.
func NewShareOutPreviewUseCase(
	cycleRepo adapter.CycleRepository,
	memberRepo adapter.MemberRepository,
) *ShareOutPreviewUseCase {
	return &ShareOutPreviewUseCase{
		cycleRepo:  cycleRepo,
		memberRepo: memberRepo,
	}
}

// Execute computes the share-out rows from the cycle's frozen dividend.
func (uc *ShareOutPreviewUseCase) Execute(ctx context.Context, input ShareOutPreviewInput) (*ShareOutPreviewOutput, error) {
	cycle, err := uc.cycleRepo.FindByID(ctx, input.CycleID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCycleNotFound) {
			return nil, domainerror.NewCycleError(
				domainerror.ErrCodeCycleNotFound,
				"cycle not found",
				domainerror.ErrCycleNotFound,
			)
		}
		return nil, err
	}

	if cycle.Status != entity.CycleStatusClosed || cycle.DividendPerShare == nil {
		return nil, domainerror.NewCycleError(
			domainerror.ErrCodeCycleNotClosed,
			"share-out is only available after the cycle is closed",
			domainerror.ErrCycleNotClosed,
		)
	}

	members, err := uc.memberRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	dps := *cycle.DividendPerShare
	rows := make([]valueobject.ShareOutRow, 0, len(members))
	total := decimal.Zero

	for _, m := range members {
		if m.TotalShares == 0 {
			continue
		}
		dividend := dps.Mul(decimal.NewFromInt(int64(m.TotalShares))).Round(2)
		rows = append(rows, valueobject.ShareOutRow{
			MemberID:   m.ID.String(),
			MemberName: m.Name,
			Shares:     m.TotalShares,
			Dividend:   dividend,
		})
		total = total.Add(dividend)
	}

	return &ShareOutPreviewOutput{
		Cycle:         cycle,
		Rows:          rows,
		TotalDividend: total,
	}, nil
}
