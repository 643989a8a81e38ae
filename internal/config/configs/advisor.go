package configs

import "time"

// Advisor configures the AI insight provider. With an empty APIKey the
// advisor is disabled and fallback replies are served.
type Advisor struct {
	APIKey  string        `env:"API_KEY"`
	Model   string        `env:"MODEL" envDefault:"gpt-5"`
	BaseURL string        `env:"BASE_URL" envDefault:"https://api.openai.com"`
	Org     string        `env:"ORG"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"20s"`
	// BreakerFailures consecutive failures open the circuit for
	// BreakerCooldown.
	BreakerFailures uint32        `env:"BREAKER_FAILURES" envDefault:"5"`
	BreakerCooldown time.Duration `env:"BREAKER_COOLDOWN" envDefault:"30s"`
}

// Enabled reports whether a provider key is configured.
func (c Advisor) Enabled() bool {
	return c.APIKey != "" && c.APIKey != "default_key"
}
