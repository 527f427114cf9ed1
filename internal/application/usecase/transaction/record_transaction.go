// Package transaction contains ledger entry use cases. The ledger is
// append-only; entries are never updated or deleted.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
)

// RecordTransactionInput represents the input for appending a ledger entry.
type RecordTransactionInput struct {
	MemberID    uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Date        *time.Time // Optional, defaults to now
	Description string
}

// RecordTransactionOutput represents the output of appending a ledger entry.
type RecordTransactionOutput struct {
	Transaction *entity.Transaction
	Member      *entity.Member
}

// RecordTransactionUseCase appends a ledger entry and applies its effect on
// the member's accumulators. Share purchases and withdrawals move savings in
// whole shares; contribution types feed the social and birthday pots.
type RecordTransactionUseCase struct {
	memberRepo   adapter.MemberRepository
	txnRepo      adapter.TransactionRepository
	settingsRepo adapter.SettingsRepository
	txManager    adapter.TxManager
	clock        adapter.Clock
}

// NewRecordTransactionUseCase creates a new RecordTransactionUseCase instance.
func NewRecordTransactionUseCase(
	memberRepo adapter.MemberRepository,
	txnRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
	txManager adapter.TxManager,
	clock adapter.Clock,
) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{
		memberRepo:   memberRepo,
		txnRepo:      txnRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		clock:        clock,
	}
}

// Execute validates and appends the ledger entry atomically with the member
// mutation it implies.
func (uc *RecordTransactionUseCase) Execute(ctx context.Context, input RecordTransactionInput) (*RecordTransactionOutput, error) {
	if !entity.ValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"unknown transaction type",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	var output *RecordTransactionOutput

	err := uc.txManager.WithinTx(ctx, func(ctx context.Context) error {
		member, err := uc.memberRepo.FindByID(ctx, input.MemberID)
		if err != nil {
			if errors.Is(err, domainerror.ErrMemberNotFound) {
				return domainerror.NewMemberError(
					domainerror.ErrCodeMemberNotFound,
					"member not found",
					domainerror.ErrMemberNotFound,
				)
			}
			return err
		}

		settings, err := uc.settingsRepo.Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		if err := uc.applyMemberEffect(member, settings, input.Type, input.Amount); err != nil {
			return err
		}

		date := uc.clock.Now()
		if input.Date != nil {
			date = *input.Date
		}

		txn := entity.NewTransaction(member.ID, input.Type, input.Amount.Round(2), date, input.Description)
		if err := uc.txnRepo.Create(ctx, txn); err != nil {
			return fmt.Errorf("failed to append transaction: %w", err)
		}

		member.UpdatedAt = uc.clock.Now()
		if err := uc.memberRepo.Update(ctx, member); err != nil {
			return fmt.Errorf("failed to update member: %w", err)
		}

		output = &RecordTransactionOutput{Transaction: txn, Member: member}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// applyMemberEffect mutates the member accumulators implied by the entry type.
// Loan disbursement/repayment types carry no member accumulator change; the
// loan lifecycle owns those balances.
func (uc *RecordTransactionUseCase) applyMemberEffect(
	member *entity.Member,
	settings *entity.Settings,
	txType entity.TransactionType,
	amount decimal.Decimal,
) error {
	switch txType {
	case entity.TransactionTypeSharePurchase:
		shares, err := sharesForAmount(amount, settings.SharePrice)
		if err != nil {
			return err
		}
		member.TotalShares += shares
		member.TotalSavings = member.TotalSavings.Add(amount)

	case entity.TransactionTypeWithdrawal:
		shares, err := sharesForAmount(amount, settings.SharePrice)
		if err != nil {
			return err
		}
		if amount.GreaterThan(member.TotalSavings) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"withdrawal exceeds member savings",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		member.TotalShares -= shares
		member.TotalSavings = member.TotalSavings.Sub(amount)

	case entity.TransactionTypeSocialContribution:
		member.SocialContributions = member.SocialContributions.Add(amount)

	case entity.TransactionTypeBirthdayContribution:
		member.BirthdayContributions = member.BirthdayContributions.Add(amount)
	}

	return nil
}

// sharesForAmount converts a savings movement to a whole share count. Savings
// only move in multiples of the configured share price.
func sharesForAmount(amount, sharePrice decimal.Decimal) (int, error) {
	if !sharePrice.IsPositive() {
		return 0, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidSharePrice,
			"share price must be greater than zero",
			domainerror.ErrInvalidSharePrice,
		)
	}

	shares := amount.Div(sharePrice)
	if !shares.IsInteger() {
		return 0, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a multiple of the share price",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	return int(shares.IntPart()), nil
}
