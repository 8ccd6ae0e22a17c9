package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports"
	"payout-gateway/internal/core/ports/mocks"
	"payout-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func sampleResult() *domain.WithdrawalResult {
	return &domain.WithdrawalResult{
		TransactionID:       "TXN1700000000000-AB12CD",
		Reference:           "WD-1700000000000",
		Amount:              decimal.NewFromInt(1000),
		Fee:                 decimal.NewFromInt(50),
		NetAmount:           decimal.NewFromInt(950),
		Gateway:             domain.GatewayStripe,
		Status:              domain.StatusProcessing,
		PaymentDetails:      map[string]interface{}{"paymentIntentId": "pi_123"},
		EstimatedCompletion: "1-3 business days",
	}
}

// --- Withdrawal Handler Tests ---

func TestWithdraw_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWithdrawalService(ctrl)
	h := NewWithdrawalHandler(mockSvc)

	mockSvc.EXPECT().ProcessWithdrawal(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w domain.Withdrawal) (*domain.WithdrawalResult, error) {
			assert.True(t, w.Amount.Equal(decimal.NewFromInt(1000)))
			assert.Equal(t, domain.MethodBank, w.Method)
			assert.Equal(t, domain.PaymentGateway("stripe"), w.Gateway)
			assert.Equal(t, "Jane Doe", w.AccountName)
			assert.Equal(t, "0123456789", w.AccountNumber)
			return sampleResult(), nil
		})

	body := `{"amount":1000,"withdrawalMethod":"bank","paymentMethod":"stripe","accountName":"Jane Doe","accountNumber":"0123456789"}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/withdraw", bytes.NewReader([]byte(body)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Withdraw(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Withdrawal initiated successfully", resp["message"])
	assert.Equal(t, "TXN1700000000000-AB12CD", resp["transactionId"])
	assert.Equal(t, "WD-1700000000000", resp["reference"])
	assert.Equal(t, float64(1000), resp["amount"])
	assert.Equal(t, float64(50), resp["fees"])
	assert.Equal(t, float64(950), resp["netAmount"])
	assert.Equal(t, "stripe", resp["paymentGateway"])
	assert.Equal(t, "processing", resp["status"])
	assert.Equal(t, "1-3 business days", resp["estimatedCompletion"])
	details := resp["paymentDetails"].(map[string]interface{})
	assert.Equal(t, "pi_123", details["paymentIntentId"])
}

func TestWithdraw_MalformedJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWithdrawalService(ctrl)
	h := NewWithdrawalHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/withdraw", bytes.NewReader([]byte("{not json")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Withdraw(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Invalid request body", resp["message"])
}

func TestWithdraw_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWithdrawalService(ctrl)
	h := NewWithdrawalHandler(mockSvc)

	mockSvc.EXPECT().ProcessWithdrawal(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrAmountTooLow())

	body := `{"amount":50,"withdrawalMethod":"bank","accountName":"Jane Doe","accountNumber":"0123456789"}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/withdraw", bytes.NewReader([]byte(body)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Withdraw(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Minimum withdrawal amount is 100", resp["message"])
}

func TestWithdraw_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWithdrawalService(ctrl)
	h := NewWithdrawalHandler(mockSvc)

	mockSvc.EXPECT().ProcessWithdrawal(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ProviderError("Card network rejected the withdrawal", errors.New("card_declined")))

	body := `{"amount":1000,"withdrawalMethod":"bank","paymentMethod":"stripe","accountName":"Jane Doe","accountNumber":"0123456789"}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/withdraw", bytes.NewReader([]byte(body)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Withdraw(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Card network rejected the withdrawal", resp["message"])
	assert.NotContains(t, w.Body.String(), "card_declined")
}

func TestWithdraw_UnexpectedErrorIsGeneric(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWithdrawalService(ctrl)
	h := NewWithdrawalHandler(mockSvc)

	mockSvc.EXPECT().ProcessWithdrawal(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("pq: connection refused at 10.1.2.3"))

	body := `{"amount":1000,"withdrawalMethod":"bank","accountName":"Jane Doe","accountNumber":"0123456789"}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/withdraw", bytes.NewReader([]byte(body)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Withdraw(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Internal server error", resp["message"])
	assert.NotContains(t, w.Body.String(), "10.1.2.3")
}

// --- Reference Handler Tests ---

func TestListBanks(t *testing.T) {
	h := NewReferenceHandler(nil, "KES")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/banks", nil)

	h.ListBanks(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	banks := resp["banks"].([]interface{})
	require.NotEmpty(t, banks)
	first := banks[0].(map[string]interface{})
	assert.NotEmpty(t, first["code"])
	assert.NotEmpty(t, first["name"])
}

func TestListTransactions_AlwaysEmpty(t *testing.T) {
	h := NewReferenceHandler(nil, "KES")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/transactions", nil)

	h.ListTransactions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	transactions, ok := resp["transactions"].([]interface{})
	require.True(t, ok, "transactions must be a JSON array, not null")
	assert.Empty(t, transactions)
}

func TestGetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBalance := mocks.NewMockBalanceService(ctrl)
	mockBalance.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(250000), nil)

	h := NewReferenceHandler(mockBalance, "KES")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/balance", nil)

	h.GetBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(250000), resp["balance"])
	assert.Equal(t, "KES", resp["currency"])
}

func TestPing(t *testing.T) {
	h := NewReferenceHandler(nil, "KES")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	h.Ping(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["message"])
}

// --- Health Check Tests ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string               { return s.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(stubChecker{name: "redis"})(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(stubChecker{name: "redis", err: errors.New("connection refused")})(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "degraded", resp["status"])
}

// --- Router Tests ---

func TestSetupRouter_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWithdrawalService(ctrl)
	mockSvc.EXPECT().ProcessWithdrawal(gomock.Any(), gomock.Any()).Return(sampleResult(), nil)

	mockBalance := mocks.NewMockBalanceService(ctrl)
	mockBalance.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(250000), nil)

	router := SetupRouter(RouterDeps{
		WithdrawalSvc:  mockSvc,
		BalanceSvc:     mockBalance,
		Currency:       "KES",
		HealthCheckers: []ports.HealthChecker{stubChecker{name: "redis"}},
		Logger:         zerolog.Nop(),
	})

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPost, "/withdraw", `{"amount":1000,"withdrawalMethod":"bank","paymentMethod":"stripe","accountName":"Jane Doe","accountNumber":"0123456789"}`, http.StatusOK},
		{http.MethodGet, "/banks", "", http.StatusOK},
		{http.MethodGet, "/transactions", "", http.StatusOK},
		{http.MethodGet, "/balance", "", http.StatusOK},
		{http.MethodGet, "/test", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
	}

	for _, tc := range cases {
		var req *http.Request
		if tc.body != "" {
			req = httptest.NewRequest(tc.method, tc.path, bytes.NewReader([]byte(tc.body)))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(tc.method, tc.path, nil)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, tc.want, w.Code, "%s %s", tc.method, tc.path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	}
}
