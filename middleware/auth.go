package middleware

import "net/http"

// TokenSource yields the current bearer token, or "" when signed out.
// services/session implements it.
type TokenSource interface {
	Token() string
}

// BearerAuth injects the session's bearer token on every request. Requests
// that already carry an Authorization header are left alone.
func BearerAuth(ts TokenSource) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("Authorization") == "" {
				if tok := ts.Token(); tok != "" {
					req = req.Clone(req.Context())
					req.Header.Set("Authorization", "Bearer "+tok)
				}
			}
			return next.RoundTrip(req)
		})
	}
}

// UserAgent sets a fixed User-Agent header. The public geocoding service
// rejects requests without an identifying agent.
func UserAgent(agent string) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			req = req.Clone(req.Context())
			req.Header.Set("User-Agent", agent)
			return next.RoundTrip(req)
		})
	}
}
