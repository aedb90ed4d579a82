package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit blocks until the limiter grants a token, honouring the request
// context. Used for the geocoding endpoint, whose usage policy allows one
// request per second.
func RateLimit(limiter *rate.Limiter) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if err := limiter.Wait(req.Context()); err != nil {
				return nil, err
			}
			return next.RoundTrip(req)
		})
	}
}
