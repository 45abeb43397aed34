package user

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// IdentityClient calls the Identity Toolkit REST surface. The Admin SDK has
// no password-verification operation, so sign-in goes through the same
// endpoint the web client uses.
type IdentityClient struct {
	APIKey     string
	HTTPClient *http.Client
}

// NewIdentityClient creates an IdentityClient with a sane timeout.
func NewIdentityClient(apiKey string) *IdentityClient {
	return &IdentityClient{
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// IdentityResult is the subset of the sign-in response we consume.
type IdentityResult struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

// SignInWithPassword verifies an email/password pair with the identity
// provider. Rejected credentials map to ErrInvalidCredentials.
func (c *IdentityClient) SignInWithPassword(ctx context.Context, email, password string) (*IdentityResult, error) {
	body, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, fmt.Errorf("identity: failed to encode sign-in request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s?key=%s", identityToolkitURL, c.APIKey), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("identity: failed to build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity: sign-in request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity: sign-in returned status %d", resp.StatusCode)
	}

	var result IdentityResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("identity: failed to decode sign-in response: %w", err)
	}
	return &result, nil
}
