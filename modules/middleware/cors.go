package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSConfig is parsed from CORS_* variables.
type CORSConfig struct {
	// AllowedOrigins lists origins allowed to call the API. "*" allows any.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	// MaxAge is how long, in seconds, browsers may cache a preflight answer.
	MaxAge int `env:"MAX_AGE" envDefault:"600"`
}

// CORS answers preflight requests with 204 and adds the CORS headers to
// every response. It must run before any route validation so preflights are
// not rejected as unknown operations.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders:       []string{"*"},
		ExposedHeaders:       []string{"ETag"},
		MaxAge:               cfg.MaxAge,
		OptionsSuccessStatus: http.StatusNoContent,
	})
	return c.Handler
}
