package configs

import "time"

// Auth configures session tokens and the cookie that carries them.
type Auth struct {
	JWTSecret string        `env:"JWT_SECRET"`
	Issuer    string        `env:"ISSUER" envDefault:"adsight"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	// CookieSecure sets the Secure attribute on the session cookie. Enable
	// it whenever the API is served over TLS.
	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"false"`
	BcryptCost   int  `env:"BCRYPT_COST" envDefault:"10"`
}
