package usecase

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"

	"github.com/go-playground/validator/v10"

	"storefront/internal/core/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SignatureKey computes the gateway notification signature: the lowercase
// hex SHA-512 digest of orderID, statusCode, grossAmount and serverKey
// concatenated without delimiters.
func SignatureKey(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// ValidateNotification reports whether n carries every signed field and a
// signature_key matching the one computed with serverKey. An empty server
// key validates nothing.
func ValidateNotification(n domain.Notification, serverKey string) bool {
	if serverKey == "" {
		return false
	}
	if err := validate.Struct(n); err != nil {
		return false
	}
	expected := SignatureKey(n.OrderID, n.StatusCode, n.GrossAmount, serverKey)
	return hmac.Equal([]byte(expected), []byte(n.SignatureKey))
}
