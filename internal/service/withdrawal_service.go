package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports"
	"payout-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// WithdrawalServiceImpl implements ports.WithdrawalService. The flow is
// linear: validate, price, dispatch to exactly one provider, notify,
// shape the result. A provider failure is terminal for the request — no
// retries and no fallback to the other rail.
type WithdrawalServiceImpl struct {
	cardProvider     ports.PaymentProvider
	transferProvider ports.PaymentProvider
	notifier         ports.Notifier
	currency         string
	log              zerolog.Logger
}

// NewWithdrawalService creates a new WithdrawalServiceImpl.
func NewWithdrawalService(
	cardProvider ports.PaymentProvider,
	transferProvider ports.PaymentProvider,
	notifier ports.Notifier,
	currency string,
	log zerolog.Logger,
) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{
		cardProvider:     cardProvider,
		transferProvider: transferProvider,
		notifier:         notifier,
		currency:         currency,
		log:              log,
	}
}

// ProcessWithdrawal runs a withdrawal end to end.
func (s *WithdrawalServiceImpl) ProcessWithdrawal(ctx context.Context, w domain.Withdrawal) (*domain.WithdrawalResult, error) {
	// Validation failures respond immediately; no transaction id is minted.
	if err := ValidateWithdrawal(w); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txnID := domain.NewTransactionID(now)
	reference := domain.NewReference(now)

	fee := WithdrawalFee(w.Method)
	netAmount := NetAmount(w.Amount, fee)

	gateway := w.Gateway.Normalize()
	provider := s.providerFor(gateway)

	resp, err := provider.Process(ctx, ports.ProviderRequest{
		Amount:        w.Amount,
		Currency:      s.currency,
		Method:        w.Method,
		AccountName:   w.AccountName,
		AccountNumber: w.AccountNumber,
		PhoneNumber:   w.PhoneNumber,
		BankCode:      w.BankCode,
		TransactionID: txnID,
		Reference:     reference,
	})
	if err != nil {
		s.log.Warn().
			Err(err).
			Str("tx_id", txnID).
			Str("gateway", string(gateway)).
			Msg("provider rejected withdrawal")

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.ProviderError(
			fmt.Sprintf("Withdrawal could not be processed by %s", gateway),
			err,
		)
	}

	status := normalizeStatus(resp.Status)

	// Notification failure is swallowed on purpose: the withdrawal already
	// succeeded, so the error branch only logs.
	if err := s.notifier.Publish(ctx, ports.WithdrawalEvent{
		TransactionID: txnID,
		Amount:        w.Amount,
		Method:        w.Method,
		Status:        status,
		AccountName:   w.AccountName,
		Reference:     reference,
		Timestamp:     now,
	}); err != nil {
		s.log.Warn().
			Err(apperror.NotificationError(err)).
			Str("tx_id", txnID).
			Msg("withdrawal notification dropped")
	}

	s.log.Info().
		Str("tx_id", txnID).
		Str("gateway", string(gateway)).
		Str("method", string(w.Method)).
		Str("amount", w.Amount.String()).
		Str("status", string(status)).
		Msg("withdrawal processed")

	return &domain.WithdrawalResult{
		TransactionID:       txnID,
		Reference:           reference,
		Amount:              w.Amount,
		Fee:                 fee,
		NetAmount:           netAmount,
		Gateway:             gateway,
		Status:              status,
		PaymentDetails:      resp.Details,
		EstimatedCompletion: w.Method.EstimatedCompletion(),
	}, nil
}

// providerFor is the typed dispatch over the closed provider set. Only an
// explicit stripe gateway selects the card network.
func (s *WithdrawalServiceImpl) providerFor(gateway domain.PaymentGateway) ports.PaymentProvider {
	if gateway == domain.GatewayStripe {
		return s.cardProvider
	}
	return s.transferProvider
}

// normalizeStatus maps the provider-reported status string onto the
// gateway's own status enum.
func normalizeStatus(providerStatus string) domain.WithdrawalStatus {
	switch strings.ToLower(providerStatus) {
	case "successful", "success", "completed":
		return domain.StatusCompleted
	case "failed", "error":
		return domain.StatusFailed
	default:
		return domain.StatusProcessing
	}
}
