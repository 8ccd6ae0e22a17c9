package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// DemoBalanceService serves an illustrative account balance. The gateway
// keeps no ledger, so the balance is fixed at construction and never
// decremented by withdrawals. It exists as an injected dependency, not
// process-wide state, so handlers can be tested against a substitute.
type DemoBalanceService struct {
	balance decimal.Decimal
}

// NewDemoBalanceService creates a balance service returning the given
// fixed balance for every account.
func NewDemoBalanceService(balance decimal.Decimal) *DemoBalanceService {
	return &DemoBalanceService{balance: balance}
}

// Balance returns the demo balance.
func (s *DemoBalanceService) Balance(_ context.Context, _ string) (decimal.Decimal, error) {
	return s.balance, nil
}
