package configs

import (
	"net/url"
	"time"
)

// Gateway holds the payment gateway credentials and status-check settings.
type Gateway struct {
	BaseURL   url.URL       `env:"BASE_URL" envDefault:"https://api.sandbox.midtrans.com"`
	ServerKey string        `env:"SERVER_KEY"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"10s"`
	// RequireFraudAccept withholds capture and settlement transitions whose
	// fraud status is anything other than "accept".
	RequireFraudAccept bool `env:"REQUIRE_FRAUD_ACCEPT" envDefault:"false"`
}
