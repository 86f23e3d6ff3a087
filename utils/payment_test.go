package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyRazorpaySignature(t *testing.T) {
	secret := "test_secret"
	orderID := "order_ABC123"
	paymentID := "pay_XYZ789"

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	signature := hex.EncodeToString(h.Sum(nil))

	assert.True(t, VerifyRazorpaySignature(orderID, paymentID, signature, secret))
	assert.False(t, VerifyRazorpaySignature(orderID, paymentID, signature, "wrong_secret"))
	assert.False(t, VerifyRazorpaySignature(orderID, "pay_other", signature, secret))
	assert.False(t, VerifyRazorpaySignature(orderID, paymentID, "deadbeef", secret))
}
