package configs

import "time"

// Rate limits login and registration attempts per client IP.
type Rate struct {
	AuthRequests int           `env:"AUTH_REQUESTS" envDefault:"20"`
	AuthWindow   time.Duration `env:"AUTH_WINDOW" envDefault:"1m"`
	Disabled     bool          `env:"DISABLED" envDefault:"false"`
}
