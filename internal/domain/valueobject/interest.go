// Package valueobject defines immutable value types and pure domain
// calculations shared across use cases.
package valueobject

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// InterestBreakdown is the result of an interest calculation.
type InterestBreakdown struct {
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Total     decimal.Decimal
	Rate      decimal.Decimal
	Kind      entity.InterestKind
}

// CalculateInterest computes interest for a principal under the given
// semantics. Amounts are rounded to 2 decimal places at the result boundary;
// intermediate arithmetic is exact.
//
//   - flat_once: interest = principal * rate/100, independent of periods
//   - linear:    interest = principal * rate/100 * periods
//   - compound:  total = principal * (1 + rate/100)^periods
func CalculateInterest(
	principal decimal.Decimal,
	ratePercent decimal.Decimal,
	kind entity.InterestKind,
	periods int,
) InterestBreakdown {
	if periods < 1 {
		periods = 1
	}

	rate := ratePercent.Div(hundred)

	var interest decimal.Decimal
	switch kind {
	case entity.InterestKindLinear:
		interest = principal.Mul(rate).Mul(decimal.NewFromInt(int64(periods)))
	case entity.InterestKindCompound:
		factor := decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(periods)))
		interest = principal.Mul(factor).Sub(principal)
	default: // flat_once
		interest = principal.Mul(rate)
	}

	interest = interest.Round(2)

	return InterestBreakdown{
		Principal: principal.Round(2),
		Interest:  interest,
		Total:     principal.Round(2).Add(interest),
		Rate:      ratePercent,
		Kind:      kind,
	}
}

// ScheduleRow is one period of a loan repayment schedule.
type ScheduleRow struct {
	Period    int
	DueDate   time.Time
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Payment   decimal.Decimal
	Balance   decimal.Decimal
}

// GenerateLoanSchedule produces a per-period repayment schedule. Principal is
// split evenly across periods; it is not a true amortizing schedule. For
// flat_once and linear kinds the row interest is the constant
// principal * rate/100; for compound it is computed off the running balance.
// A term of one period or less yields no schedule (lump-sum repayment only).
func GenerateLoanSchedule(
	principal decimal.Decimal,
	ratePercent decimal.Decimal,
	kind entity.InterestKind,
	periods int,
	start time.Time,
) []ScheduleRow {
	if periods <= 1 {
		return nil
	}

	rate := ratePercent.Div(hundred)
	principalShare := principal.Div(decimal.NewFromInt(int64(periods))).Round(2)
	flatInterest := principal.Mul(rate).Round(2)

	rows := make([]ScheduleRow, 0, periods)
	balance := principal

	for period := 1; period <= periods; period++ {
		var interest decimal.Decimal
		if kind == entity.InterestKindCompound {
			interest = balance.Mul(rate).Round(2)
		} else {
			interest = flatInterest
		}

		balance = balance.Sub(principalShare)
		if balance.IsNegative() {
			balance = decimal.Zero
		}

		rows = append(rows, ScheduleRow{
			Period:    period,
			DueDate:   start.AddDate(0, period, 0),
			Principal: principalShare,
			Interest:  interest,
			Payment:   principalShare.Add(interest),
			Balance:   balance,
		})
	}

	return rows
}
