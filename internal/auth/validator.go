// Package auth validates bearer tokens against the external identity
// provider and caches successful validations for a bounded TTL.
package auth

//go:generate mockgen -destination=mock/mock_validator.go -package=authmock github.com/gleasonw/lidnd/internal/auth Validator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gleasonw/lidnd/internal/errors"
)

// Principal is the authenticated caller.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Validator resolves a bearer token to a principal.
type Validator interface {
	Validate(ctx context.Context, token string) (*Principal, error)
}

type principalContextKey struct{}

// ContextWithPrincipal stores the authenticated principal on the context.
func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext returns the authenticated principal, or nil when
// the request never passed through the auth middleware.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalContextKey{}).(*Principal)
	return p
}

// HTTPValidator validates tokens by asking the identity provider who the
// token belongs to (the provider's users/@me endpoint).
type HTTPValidator struct {
	baseURL    string
	httpClient *http.Client
}

// HTTPValidatorConfig contains configuration for the HTTP validator.
type HTTPValidatorConfig struct {
	// BaseURL of the identity provider API, e.g. https://discord.com/api
	BaseURL string
	// HTTPClient is optional; http.DefaultClient is used when nil
	HTTPClient *http.Client
}

// Validate validates the HTTPValidatorConfig.
func (cfg *HTTPValidatorConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		return errors.InvalidArgument("base URL cannot be empty")
	}
	return nil
}

// NewHTTPValidator creates a validator backed by the identity provider's
// REST API.
func NewHTTPValidator(cfg *HTTPValidatorConfig) (*HTTPValidator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPValidator{
		baseURL:    cfg.BaseURL,
		httpClient: client,
	}, nil
}

// Validate resolves the token by calling the provider. Any non-200
// answer means the token is not (or no longer) valid.
func (v *HTTPValidator) Validate(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, errors.Unauthenticated("missing bearer token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/users/@me", nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build identity request")
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "identity provider unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unauthenticatedf("identity provider rejected token (status %d)", resp.StatusCode)
	}

	var principal Principal
	if err := json.NewDecoder(resp.Body).Decode(&principal); err != nil {
		return nil, errors.Wrapf(err, "failed to decode identity response")
	}
	if principal.ID == "" {
		return nil, errors.Unauthenticated("identity provider returned no user ID")
	}

	return &principal, nil
}
