package flutterwave

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"payout-gateway/config"
	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports"
	"payout-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// mpesaBankCode is the transfer network's routing code for M-Pesa wallets.
const mpesaBankCode = "MPS"

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the transfer-network provider adapter. It submits a transfer
// per withdrawal through Flutterwave's JSON API with bearer-token auth.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a new transfer-network client. The HTTP client owns
// the request timeout; a timeout surfaces as a provider error.
func NewClient(cfg config.FlutterwaveConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:  cfg.SecretKey,
		httpClient: httpClient,
		log:        log,
	}
}

// Name identifies the gateway for dispatch and response shaping.
func (c *Client) Name() domain.PaymentGateway {
	return domain.GatewayFlutterwave
}

// transferRequest is the transfer creation payload.
type transferRequest struct {
	AccountBank     string  `json:"account_bank"`
	AccountNumber   string  `json:"account_number"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Narration       string  `json:"narration"`
	Reference       string  `json:"reference"`
	BeneficiaryName string  `json:"beneficiary_name"`
}

// transferResponse is the subset of the transfer object we consume.
type transferResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		ID        int64  `json:"id"`
		Status    string `json:"status"`
		Reference string `json:"reference"`
	} `json:"data"`
}

// Process submits a transfer for the withdrawal. Bank withdrawals route by
// bank code and account number; mpesa withdrawals route by the MPS code
// and phone number.
func (c *Client) Process(ctx context.Context, req ports.ProviderRequest) (*ports.ProviderResponse, error) {
	payload := transferRequest{
		AccountBank:     req.BankCode,
		AccountNumber:   req.AccountNumber,
		Amount:          req.Amount.InexactFloat64(),
		Currency:        req.Currency,
		Narration:       fmt.Sprintf("Withdrawal %s", req.TransactionID),
		Reference:       req.Reference,
		BeneficiaryName: req.AccountName,
	}
	if req.Method == domain.MethodMpesa {
		payload.AccountBank = mpesaBankCode
		payload.AccountNumber = req.PhoneNumber
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperror.ProviderError("Transfer network request could not be built", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v3/transfers", bytes.NewReader(body))
	if err != nil {
		return nil, apperror.ProviderError("Transfer network request could not be built", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, apperror.ProviderError("Transfer network is unreachable",
			fmt.Errorf("flutterwave: create transfer: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.ProviderError("Transfer network response could not be read", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("tx_id", req.TransactionID).
			Msg("flutterwave: transfer rejected")
		return nil, apperror.ProviderError("Transfer network rejected the withdrawal",
			fmt.Errorf("flutterwave: status %d: %s", resp.StatusCode, respBody))
	}

	var transfer transferResponse
	if err := json.Unmarshal(respBody, &transfer); err != nil {
		return nil, apperror.ProviderError("Transfer network returned a malformed response", err)
	}
	if transfer.Status != "success" {
		return nil, apperror.ProviderError("Transfer network rejected the withdrawal",
			fmt.Errorf("flutterwave: status %q: %s", transfer.Status, transfer.Message))
	}

	reference := transfer.Data.Reference
	if reference == "" {
		reference = req.Reference
	}

	c.log.Debug().
		Int64("transfer_id", transfer.Data.ID).
		Str("tx_id", req.TransactionID).
		Msg("flutterwave: transfer created")

	return &ports.ProviderResponse{
		Gateway:   domain.GatewayFlutterwave,
		PaymentID: strconv.FormatInt(transfer.Data.ID, 10),
		Status:    transfer.Data.Status,
		Reference: reference,
		Details: map[string]interface{}{
			"transferId":     transfer.Data.ID,
			"providerStatus": transfer.Data.Status,
		},
	}, nil
}
