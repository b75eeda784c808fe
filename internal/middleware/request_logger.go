package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

func LogRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		next.ServeHTTP(w, r)

		duration := time.Since(start)
		logArgs := []any{
			"request_id", requestID,
			"user_agent", r.UserAgent(),
			"ip", getIPAddress(r),
			"method", r.Method,
			"url", r.URL.String(),
			"proto", r.Proto,
			"duration", duration,
		}

		if writer, ok := w.(*SafeResponseWriter); ok {
			logArgs = append(logArgs,
				slog.Int("status_code", writer.Status()),
				slog.Int("bytes", writer.BytesWritten()),
			)
		}

		slog.Info("incoming request", logArgs...)
	})
}

// getIPAddress extracts the client's IP address from the request.
func getIPAddress(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	if forwardedFor := r.Header.Values("X-Forwarded-For"); len(forwardedFor) > 0 {
		ips := strings.Split(forwardedFor[0], ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
