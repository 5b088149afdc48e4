package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/chybatronik/goAttioMCP/internal/logging"
)

// BearerAuth validates the inbound Authorization header on the SSE
// transport. An empty expected token disables authentication entirely;
// the caller is expected to log a warning when configuring it that way.
func BearerAuth(expectedToken string, logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expectedToken == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := extractBearerToken(r)
			if token == "" {
				logger.WithRequestID(GetRequestID(r.Context())).Warn("missing bearer token",
					logging.FieldHTTPPath, r.URL.Path,
				)
				writeAuthErrorResponse(w, "Missing bearer token")
				return
			}

			// Constant-time compare so token length/content can't be probed
			if subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
				logger.WithRequestID(GetRequestID(r.Context())).Warn("invalid bearer token",
					logging.FieldHTTPPath, r.URL.Path,
				)
				writeAuthErrorResponse(w, "Invalid bearer token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func writeAuthErrorResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
		"code":  "UNAUTHORIZED",
	})
}
