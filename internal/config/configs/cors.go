package configs

// CORS lists the browser origins allowed to call the API with
// credentials. Empty means same-origin only.
type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	MaxAge         int      `env:"MAX_AGE" envDefault:"300"`
}
