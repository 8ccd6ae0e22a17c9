package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalMethod is the rail the money leaves on.
type WithdrawalMethod string

const (
	MethodBank  WithdrawalMethod = "bank"
	MethodMpesa WithdrawalMethod = "mpesa"
)

// IsValid reports whether the method is one of the supported rails.
func (m WithdrawalMethod) IsValid() bool {
	return m == MethodBank || m == MethodMpesa
}

// EstimatedCompletion returns the human-readable settlement window for
// the method.
func (m WithdrawalMethod) EstimatedCompletion() string {
	if m == MethodBank {
		return "1-3 business days"
	}
	return "Within 24 hours"
}

// PaymentGateway identifies the external provider handling a withdrawal.
type PaymentGateway string

const (
	GatewayStripe      PaymentGateway = "stripe"
	GatewayFlutterwave PaymentGateway = "flutterwave"
)

// Normalize resolves the gateway for dispatch. Only an explicit "stripe"
// selects the card network; everything else, including the empty value,
// goes to the transfer network.
func (g PaymentGateway) Normalize() PaymentGateway {
	if g == GatewayStripe {
		return GatewayStripe
	}
	return GatewayFlutterwave
}

// WithdrawalStatus is the lifecycle state reported back to the caller.
type WithdrawalStatus string

const (
	StatusCompleted  WithdrawalStatus = "completed"
	StatusProcessing WithdrawalStatus = "processing"
	StatusFailed     WithdrawalStatus = "failed"
)

// Withdrawal is a validated-or-not payout request. It lives for a single
// request/response cycle and is never persisted.
type Withdrawal struct {
	Amount        decimal.Decimal
	Method        WithdrawalMethod
	Gateway       PaymentGateway // zero value dispatches to the transfer network
	AccountName   string
	AccountNumber string
	PhoneNumber   string
	BankCode      string
}

// Recipient returns the destination identifier for the selected method.
func (w Withdrawal) Recipient() string {
	if w.Method == MethodBank {
		return w.AccountNumber
	}
	return w.PhoneNumber
}

// WithdrawalResult is the normalized outcome of a successful withdrawal.
type WithdrawalResult struct {
	TransactionID       string
	Reference           string
	Amount              decimal.Decimal
	Fee                 decimal.Decimal
	NetAmount           decimal.Decimal
	Gateway             PaymentGateway
	Status              WithdrawalStatus
	PaymentDetails      map[string]interface{}
	EstimatedCompletion string
}

const (
	transactionIDPrefix = "TXN"
	referencePrefix     = "WD"
)

// NewTransactionID builds a locally generated transaction identifier:
// prefix, millisecond timestamp, and a random alphanumeric suffix,
// uppercased. Uniqueness is best-effort — there is no collision check
// because nothing is persisted to check against.
func NewTransactionID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return strings.ToUpper(fmt.Sprintf("%s%d-%s", transactionIDPrefix, now.UnixMilli(), suffix))
}

// NewReference builds the secondary correlation identifier.
func NewReference(now time.Time) string {
	return fmt.Sprintf("%s-%d", referencePrefix, now.UnixMilli())
}
