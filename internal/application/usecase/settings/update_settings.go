package settings

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
)

// UpdateSettingsInput represents the patch applied to the configuration. Nil
// fields are left unchanged; the result is persisted as a whole object.
type UpdateSettingsInput struct {
	SharePrice             *decimal.Decimal
	SocialContribution     *decimal.Decimal
	BirthdayContribution   *decimal.Decimal
	DefaultInterestRate    *decimal.Decimal
	DefaultInterestKind    *entity.InterestKind
	MaxLoanMultiplier      *decimal.Decimal
	LoanTermDays           *int
	LatePenaltyRate        *decimal.Decimal
	AbsenteeFinePercentage *decimal.Decimal
	Currency               *string
	BankName               *string
}

// UpdateSettingsOutput represents the output of a settings update.
type UpdateSettingsOutput struct {
	Settings *entity.Settings
}

// UpdateSettingsUseCase applies a configuration patch and replaces the
// singleton atomically so readers never observe a half-applied update.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	clock        adapter.Clock
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository, clock adapter.Clock) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
		clock:        clock,
	}
}

// Execute applies the patch.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	current, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	next := *current

	if input.SharePrice != nil {
		if !input.SharePrice.IsPositive() {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidSharePrice,
				"share price must be greater than zero",
				domainerror.ErrInvalidSharePrice,
			)
		}
		next.SharePrice = *input.SharePrice
	}

	if input.SocialContribution != nil {
		next.SocialContribution = *input.SocialContribution
	}
	if input.BirthdayContribution != nil {
		next.BirthdayContribution = *input.BirthdayContribution
	}
	if input.DefaultInterestRate != nil {
		next.DefaultInterestRate = *input.DefaultInterestRate
	}

	if input.DefaultInterestKind != nil {
		if !entity.ValidInterestKind(*input.DefaultInterestKind) {
			return nil, domainerror.NewLoanError(
				domainerror.ErrCodeInvalidInterestKind,
				"interest kind must be 'flat_once', 'linear', or 'compound'",
				domainerror.ErrInvalidInterestKind,
			)
		}
		next.DefaultInterestKind = *input.DefaultInterestKind
	}

	if input.MaxLoanMultiplier != nil {
		if !input.MaxLoanMultiplier.IsPositive() {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidLoanMultiplier,
				"loan multiplier must be greater than zero",
				domainerror.ErrInvalidLoanMultiplier,
			)
		}
		next.MaxLoanMultiplier = *input.MaxLoanMultiplier
	}

	if input.LoanTermDays != nil {
		if *input.LoanTermDays <= 0 {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidLoanTermDays,
				"loan term days must be greater than zero",
				domainerror.ErrInvalidLoanTermDays,
			)
		}
		next.LoanTermDays = *input.LoanTermDays
	}

	if input.LatePenaltyRate != nil {
		next.LatePenaltyRate = *input.LatePenaltyRate
	}
	if input.AbsenteeFinePercentage != nil {
		next.AbsenteeFinePercentage = *input.AbsenteeFinePercentage
	}
	if input.Currency != nil {
		next.Currency = *input.Currency
	}
	if input.BankName != nil {
		next.BankName = *input.BankName
	}

	next.UpdatedAt = uc.clock.Now()

	if err := uc.settingsRepo.Save(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &UpdateSettingsOutput{Settings: &next}, nil
}
