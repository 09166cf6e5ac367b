package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleasonw/lidnd/internal/auth"
	"github.com/gleasonw/lidnd/internal/errors"
	"github.com/gleasonw/lidnd/internal/pkg/clock"
)

func TestHTTPValidatorAcceptsValidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/@me", r.URL.Path)
		assert.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"42","username":"gleason"}`))
	}))
	defer srv.Close()

	v, err := auth.NewHTTPValidator(&auth.HTTPValidatorConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	principal, err := v.Validate(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "42", principal.ID)
	assert.Equal(t, "gleason", principal.Username)
}

func TestHTTPValidatorRejectsBadToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	v, err := auth.NewHTTPValidator(&auth.HTTPValidatorConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = v.Validate(context.Background(), "bad-token")
	assert.True(t, errors.IsUnauthenticated(err))
}

func TestHTTPValidatorRejectsEmptyToken(t *testing.T) {
	v, err := auth.NewHTTPValidator(&auth.HTTPValidatorConfig{BaseURL: "http://localhost:1"})
	require.NoError(t, err)

	_, err = v.Validate(context.Background(), "")
	assert.True(t, errors.IsUnauthenticated(err))
}

// countingValidator counts pass-through validations.
type countingValidator struct {
	calls     atomic.Int64
	principal *auth.Principal
	err       error
}

func (c *countingValidator) Validate(_ context.Context, _ string) (*auth.Principal, error) {
	c.calls.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return c.principal, nil
}

func TestCachingValidatorHitsWithinTTL(t *testing.T) {
	next := &countingValidator{principal: &auth.Principal{ID: "42", Username: "gleason"}}
	fixed := clock.NewFixed(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	v, err := auth.NewCachingValidator(&auth.CachingValidatorConfig{
		Next:  next,
		TTL:   24 * time.Hour,
		Clock: fixed,
	})
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		principal, err := v.Validate(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, "42", principal.ID)
	}

	assert.Equal(t, int64(1), next.calls.Load(), "only the first validation reaches the provider")
}

func TestCachingValidatorRevalidatesAfterTTL(t *testing.T) {
	next := &countingValidator{principal: &auth.Principal{ID: "42"}}
	fixed := clock.NewFixed(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	v, err := auth.NewCachingValidator(&auth.CachingValidatorConfig{
		Next:  next,
		TTL:   time.Hour,
		Clock: fixed,
	})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = v.Validate(ctx, "token")
	require.NoError(t, err)

	fixed.Advance(2 * time.Hour)

	_, err = v.Validate(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.calls.Load())
}

func TestCachingValidatorDoesNotCacheFailures(t *testing.T) {
	next := &countingValidator{err: errors.Unauthenticated("nope")}

	v, err := auth.NewCachingValidator(&auth.CachingValidatorConfig{
		Next: next,
		TTL:  time.Hour,
	})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = v.Validate(ctx, "token")
	assert.True(t, errors.IsUnauthenticated(err))
	_, err = v.Validate(ctx, "token")
	assert.True(t, errors.IsUnauthenticated(err))

	assert.Equal(t, int64(2), next.calls.Load(), "failures always reach the provider")
}

func TestCachingValidatorStaysBounded(t *testing.T) {
	next := &countingValidator{principal: &auth.Principal{ID: "42"}}
	fixed := clock.NewFixed(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	v, err := auth.NewCachingValidator(&auth.CachingValidatorConfig{
		Next:       next,
		TTL:        time.Hour,
		Clock:      fixed,
		MaxEntries: 2,
	})
	require.NoError(t, err)

	ctx := context.Background()
	for _, token := range []string{"a", "b", "c", "d"} {
		_, err := v.Validate(ctx, token)
		require.NoError(t, err)
	}

	// All four tokens validated; the cache never rejected a new one.
	assert.Equal(t, int64(4), next.calls.Load())
}

func TestPrincipalContextRoundTrip(t *testing.T) {
	assert.Nil(t, auth.PrincipalFromContext(context.Background()))

	p := &auth.Principal{ID: "42"}
	ctx := auth.ContextWithPrincipal(context.Background(), p)
	assert.Equal(t, p, auth.PrincipalFromContext(ctx))
}
