package service

import (
	"payout-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

var (
	bankFee    = decimal.NewFromInt(50)
	defaultFee = decimal.NewFromInt(25)
)

// WithdrawalFee returns the flat fee for a withdrawal method, in the same
// unit as the request amount. Bank transfers cost 50; everything else 25.
func WithdrawalFee(method domain.WithdrawalMethod) decimal.Decimal {
	if method == domain.MethodBank {
		return bankFee
	}
	return defaultFee
}

// NetAmount is amount minus fee. It can go negative when the amount sits
// near the minimum; callers surface it as-is (known product edge case,
// pending clarification).
func NetAmount(amount, fee decimal.Decimal) decimal.Decimal {
	return amount.Sub(fee)
}
