package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"payout-gateway/config"
	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports"
	"payout-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the card-network provider adapter. It creates a payment intent
// per withdrawal through Stripe's form-encoded API.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a new card-network client. The HTTP client owns the
// request timeout; a timeout surfaces as a provider error.
func NewClient(cfg config.StripeConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:  cfg.SecretKey,
		httpClient: httpClient,
		log:        log,
	}
}

// Name identifies the gateway for dispatch and response shaping.
func (c *Client) Name() domain.PaymentGateway {
	return domain.GatewayStripe
}

// paymentIntent is the subset of Stripe's payment intent object we consume.
type paymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

var minorUnitFactor = decimal.NewFromInt(100)

// Process creates a payment intent for the withdrawal. Stripe expects
// amounts in the currency's minor unit, so the amount is multiplied by 100
// and rounded to the nearest integer before transmission.
func (c *Client) Process(ctx context.Context, req ports.ProviderRequest) (*ports.ProviderResponse, error) {
	minorUnits := req.Amount.Mul(minorUnitFactor).Round(0).IntPart()

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(minorUnits, 10))
	form.Set("currency", strings.ToLower(req.Currency))
	form.Set("description", fmt.Sprintf("Withdrawal %s", req.TransactionID))
	form.Set("metadata[transaction_id]", req.TransactionID)
	form.Set("metadata[reference]", req.Reference)
	form.Set("metadata[account_name]", req.AccountName)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperror.ProviderError("Card network request could not be built", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, apperror.ProviderError("Card network is unreachable",
			fmt.Errorf("stripe: create payment intent: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.ProviderError("Card network response could not be read", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("tx_id", req.TransactionID).
			Msg("stripe: payment intent rejected")
		return nil, apperror.ProviderError("Card network rejected the withdrawal",
			fmt.Errorf("stripe: status %d: %s", resp.StatusCode, body))
	}

	var intent paymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, apperror.ProviderError("Card network returned a malformed response", err)
	}
	if intent.ID == "" {
		return nil, apperror.ProviderError("Card network returned a malformed response",
			fmt.Errorf("stripe: payment intent missing id"))
	}

	c.log.Debug().
		Str("payment_intent", intent.ID).
		Str("tx_id", req.TransactionID).
		Msg("stripe: payment intent created")

	return &ports.ProviderResponse{
		Gateway:   domain.GatewayStripe,
		PaymentID: intent.ID,
		Status:    "processing",
		Reference: req.Reference,
		Details: map[string]interface{}{
			"paymentIntentId": intent.ID,
			"clientSecret":    intent.ClientSecret,
		},
	}, nil
}
