package api

import "context"

// AuthResult is the identity provider's response to a sign-in.
type AuthResult struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	// ProviderID is set when the account also owns a contractor profile.
	ProviderID string `json:"provider_id,omitempty"`
}

// SignIn exchanges credentials for a bearer token.
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResult
	if err := c.post(ctx, "/auth/sign-in", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignOut revokes the current token server-side.
func (c *Client) SignOut(ctx context.Context) error {
	return c.post(ctx, "/auth/sign-out", nil, nil)
}
