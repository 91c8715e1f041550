package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthcareplus/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	client := NewRazorpayClient(config.PaymentConfig{KeySecret: "test_secret"})

	valid := sign("test_secret", "order_abc", "pay_xyz")
	assert.True(t, client.VerifySignature("order_abc", "pay_xyz", valid))

	// wrong secret
	forged := sign("other_secret", "order_abc", "pay_xyz")
	assert.False(t, client.VerifySignature("order_abc", "pay_xyz", forged))

	// signature for a different payment
	assert.False(t, client.VerifySignature("order_abc", "pay_other", valid))

	// garbage and empty input
	assert.False(t, client.VerifySignature("order_abc", "pay_xyz", "deadbeef"))
	assert.False(t, client.VerifySignature("order_abc", "pay_xyz", ""))
}

func TestCreateOrder(t *testing.T) {
	var gotPayload map[string]interface{}
	var gotUser, gotPass string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/orders", r.URL.Path)

		var ok bool
		gotUser, gotPass, ok = r.BasicAuth()
		require.True(t, ok)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		json.NewEncoder(w).Encode(Order{
			ID:       "order_test123",
			Amount:   50000,
			Currency: "INR",
			Receipt:  "receipt_1",
			Status:   "created",
		})
	}))
	defer server.Close()

	client := NewRazorpayClient(config.PaymentConfig{
		BaseURL:   server.URL,
		KeyID:     "key_id",
		KeySecret: "key_secret",
	})

	order, err := client.CreateOrder(context.Background(), decimal.NewFromInt(500), "INR", "receipt_1")
	require.NoError(t, err)

	assert.Equal(t, "order_test123", order.ID)
	assert.Equal(t, int64(50000), order.Amount)
	assert.Equal(t, "created", order.Status)

	// amount is converted to minor units on the wire
	assert.Equal(t, float64(50000), gotPayload["amount"])
	assert.Equal(t, "INR", gotPayload["currency"])
	assert.Equal(t, "key_id", gotUser)
	assert.Equal(t, "key_secret", gotPass)
}

func TestCreateOrderGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewRazorpayClient(config.PaymentConfig{BaseURL: server.URL})

	_, err := client.CreateOrder(context.Background(), decimal.NewFromInt(100), "INR", "r")
	assert.Error(t, err)
}
