package service

import (
	"regexp"

	"payout-gateway/internal/core/domain"
	"payout-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
)

var (
	minWithdrawal = decimal.NewFromInt(100)
	maxWithdrawal = decimal.NewFromInt(1_000_000)

	// M-Pesa style local number: exactly ten digits.
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidateWithdrawal checks amount bounds and method-specific required
// fields. It is deterministic, has no side effects, and returns the first
// failing rule as an *apperror.AppError; nil means the request may proceed.
func ValidateWithdrawal(w domain.Withdrawal) error {
	if w.Amount.LessThan(minWithdrawal) {
		return apperror.ErrAmountTooLow()
	}
	if w.Amount.GreaterThan(maxWithdrawal) {
		return apperror.ErrAmountTooHigh()
	}

	switch w.Method {
	case domain.MethodBank:
		if w.AccountNumber == "" || w.AccountName == "" {
			return apperror.ErrMissingBankDetails()
		}
	case domain.MethodMpesa:
		if !phonePattern.MatchString(w.PhoneNumber) {
			return apperror.ErrInvalidPhoneNumber()
		}
	default:
		return apperror.ErrMissingMethod()
	}

	return nil
}
