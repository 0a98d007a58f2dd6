package configs

// Webhook limits the rate of inbound payment notifications.
type Webhook struct {
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"50"`
	Burst     int     `env:"BURST" envDefault:"100"`
}
