package ports

import (
	"context"
	"time"

	"payout-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

// WithdrawalService orchestrates a payout request end to end: validate,
// price, dispatch to a provider, notify, shape the result.
type WithdrawalService interface {
	ProcessWithdrawal(ctx context.Context, w domain.Withdrawal) (*domain.WithdrawalResult, error)
}

// PaymentProvider is implemented by each external payment rail. A failed
// call returns a provider error; the orchestrator never falls back to the
// other rail.
type PaymentProvider interface {
	Name() domain.PaymentGateway
	Process(ctx context.Context, req ProviderRequest) (*ProviderResponse, error)
}

// ProviderRequest carries a validated withdrawal to a provider.
type ProviderRequest struct {
	Amount        decimal.Decimal
	Currency      string
	Method        domain.WithdrawalMethod
	AccountName   string
	AccountNumber string
	PhoneNumber   string
	BankCode      string
	TransactionID string
	Reference     string
}

// ProviderResponse is the normalized result of one provider call. It is
// created by the adapter and consumed once by the orchestrator.
type ProviderResponse struct {
	Gateway   domain.PaymentGateway
	PaymentID string
	Status    string // provider-reported, normalized by the orchestrator
	Reference string
	Details   map[string]interface{}
}

// WithdrawalEvent is the payload published to the real-time channel after
// a successful withdrawal.
type WithdrawalEvent struct {
	TransactionID string                  `json:"transactionId"`
	Amount        decimal.Decimal         `json:"amount"`
	Method        domain.WithdrawalMethod `json:"method"`
	Status        domain.WithdrawalStatus `json:"status"`
	AccountName   string                  `json:"accountName"`
	Reference     string                  `json:"reference"`
	Timestamp     time.Time               `json:"timestamp"`
}

// Notifier publishes withdrawal events to subscribed clients. Delivery is
// fire-and-forget, at-most-once; a returned error must never fail the
// withdrawal that triggered it.
type Notifier interface {
	Publish(ctx context.Context, event WithdrawalEvent) error
}

// BalanceService exposes the demo account balance. It is injected rather
// than read from process-wide state so handlers stay safe under concurrent
// requests and tests can substitute it. The balance is illustrative only
// and is never decremented.
type BalanceService interface {
	Balance(ctx context.Context, account string) (decimal.Decimal, error)
}
