package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/kemasindo/storefront/pkg/logger"
)

type tokenKey string

const sessionTokenKey tokenKey = "session_token"

// WithSessionToken returns a context carrying the raw bearer token, for
// calls that need to be forwarded to the auth service.
func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKey, token)
}

// SessionTokenFromContext extracts the raw bearer token, if any
func SessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(sessionTokenKey).(string)
	return token, ok && token != ""
}

// HTTPGate is a Gate implementation backed by the auth service's HTTP API
type HTTPGate struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGate creates a gate client for the auth service at baseURL
func NewHTTPGate(baseURL string) *HTTPGate {
	return &HTTPGate{
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   5 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// CurrentUser asks the auth service who the session token belongs to.
// An anonymous request (no token, or a token the auth service rejects)
// returns (nil, nil).
func (g *HTTPGate) CurrentUser(ctx context.Context) (*Identity, error) {
	token, ok := SessionTokenFromContext(ctx)
	if !ok {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/api/auth/me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build auth request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}

	var body struct {
		Data Identity `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}

	return &body.Data, nil
}

// SignOut invalidates the session on the auth service. A missing token
// is a no-op.
func (g *HTTPGate) SignOut(ctx context.Context) error {
	token, ok := SessionTokenFromContext(ctx)
	if !ok {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/auth/logout", nil)
	if err != nil {
		return fmt.Errorf("failed to build sign-out request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}

	logger.Logger.Info().Msg("Session signed out via auth service")
	return nil
}
