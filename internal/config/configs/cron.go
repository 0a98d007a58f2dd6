package configs

import "time"

// Cron configures how campaign activation sync is triggered.
type Cron struct {
	// Secret is the bearer token an external scheduler must present in
	// production.
	Secret string `env:"SECRET"`
	// SyncInterval drives the in-process ticker. Zero disables it and
	// leaves scheduling to an external caller of the HTTP trigger.
	SyncInterval time.Duration `env:"SYNC_INTERVAL" envDefault:"5m"`
}
