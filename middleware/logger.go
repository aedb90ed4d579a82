package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RequestLogger logs every outgoing request with method, URL, status and
// duration. Failures are logged at warn so a flaky backend is visible without
// drowning the debug stream.
func RequestLogger(logger *zap.Logger) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("url", req.URL.Redacted()),
				zap.Duration("took", time.Since(start)),
			}
			if err != nil {
				logger.Warn("request failed", append(fields, zap.Error(err))...)
				return nil, err
			}
			logger.Debug("request", append(fields, zap.Int("status", resp.StatusCode))...)
			return resp, nil
		})
	}
}
