package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSOptions configures cross-origin access for the storefront API.
// The cart rides a session cookie, so browsers only send it cross-origin
// when AllowCredentials is set and the origin is echoed back verbatim.
type CORSOptions struct {
	AllowedOrigins   []string // exact origins, or ["*"] for any
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int // seconds for preflight cache
}

// DefaultCORSOptions suits a storefront whose admin dashboard may be
// served from a different origin than the API.
func DefaultCORSOptions() CORSOptions {
	return CORSOptions{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
}

func (o CORSOptions) resolveOrigin(origin string) string {
	if origin == "" {
		return ""
	}
	for _, allowed := range o.AllowedOrigins {
		if allowed == origin {
			return origin
		}
		if allowed == "*" {
			// A wildcard cannot be combined with credentials, so
			// reflect the caller's origin instead.
			if o.AllowCredentials {
				return origin
			}
			return "*"
		}
	}
	return ""
}

// CORS returns a middleware that answers preflights and stamps CORS
// headers on every allowed cross-origin request.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	methods := strings.Join(opts.AllowedMethods, ", ")
	headers := strings.Join(opts.AllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := opts.resolveOrigin(r.Header.Get("Origin")); origin != "" {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", methods)
				h.Set("Access-Control-Allow-Headers", headers)
				if origin != "*" {
					h.Add("Vary", "Origin")
				}
				if opts.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				if opts.MaxAge > 0 {
					h.Set("Access-Control-Max-Age", strconv.Itoa(opts.MaxAge))
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
