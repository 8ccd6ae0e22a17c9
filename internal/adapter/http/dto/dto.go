package dto

import (
	"payout-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// WithdrawRequest is the request body for POST /withdraw.
type WithdrawRequest struct {
	Amount           decimal.Decimal `json:"amount"`
	WithdrawalMethod string          `json:"withdrawalMethod"`
	PaymentMethod    string          `json:"paymentMethod"`
	AccountName      string          `json:"accountName"`
	AccountNumber    string          `json:"accountNumber"`
	PhoneNumber      string          `json:"phoneNumber"`
	BankCode         string          `json:"bankCode"`
}

// ToDomain maps the wire request onto the domain value. Field-level
// validation happens in the service, not here, so the service owns the
// error messages.
func (r WithdrawRequest) ToDomain() domain.Withdrawal {
	return domain.Withdrawal{
		Amount:        r.Amount,
		Method:        domain.WithdrawalMethod(r.WithdrawalMethod),
		Gateway:       domain.PaymentGateway(r.PaymentMethod),
		AccountName:   r.AccountName,
		AccountNumber: r.AccountNumber,
		PhoneNumber:   r.PhoneNumber,
		BankCode:      r.BankCode,
	}
}

// WithdrawResponse is the flat envelope returned for a successful withdrawal.
type WithdrawResponse struct {
	Success             bool                   `json:"success"`
	Message             string                 `json:"message"`
	TransactionID       string                 `json:"transactionId"`
	Reference           string                 `json:"reference"`
	Amount              decimal.Decimal        `json:"amount"`
	Fees                decimal.Decimal        `json:"fees"`
	NetAmount           decimal.Decimal        `json:"netAmount"`
	PaymentGateway      string                 `json:"paymentGateway"`
	PaymentDetails      map[string]interface{} `json:"paymentDetails,omitempty"`
	Status              string                 `json:"status"`
	EstimatedCompletion string                 `json:"estimatedCompletion,omitempty"`
}

// NewWithdrawResponse shapes a domain result for the wire.
func NewWithdrawResponse(result *domain.WithdrawalResult) WithdrawResponse {
	return WithdrawResponse{
		Success:             true,
		Message:             "Withdrawal initiated successfully",
		TransactionID:       result.TransactionID,
		Reference:           result.Reference,
		Amount:              result.Amount,
		Fees:                result.Fee,
		NetAmount:           result.NetAmount,
		PaymentGateway:      string(result.Gateway),
		PaymentDetails:      result.PaymentDetails,
		Status:              string(result.Status),
		EstimatedCompletion: result.EstimatedCompletion,
	}
}

// BanksResponse is the body for GET /banks.
type BanksResponse struct {
	Success bool          `json:"success"`
	Banks   []domain.Bank `json:"banks"`
}

// TransactionsResponse is the body for GET /transactions. The collection
// is always empty: the gateway retains no history.
type TransactionsResponse struct {
	Success      bool          `json:"success"`
	Transactions []interface{} `json:"transactions"`
}

// BalanceResponse is the body for GET /balance.
type BalanceResponse struct {
	Success  bool            `json:"success"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}
