package errors_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleasonw/lidnd/internal/errors"
)

func TestErrorMessage(t *testing.T) {
	err := errors.NotFound("encounter not found")
	assert.Equal(t, "NOT_FOUND: encounter not found", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("dial tcp: refused"), "failed to load encounter")
	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "dial tcp: refused")
}

func TestWrapPreservesCode(t *testing.T) {
	base := errors.NotFound("participant not found")
	wrapped := errors.Wrap(base, "advance turn")

	assert.Equal(t, errors.CodeNotFound, wrapped.Code)
	assert.True(t, errors.IsNotFound(wrapped))
}

func TestWrapWithCode(t *testing.T) {
	base := fmt.Errorf("row missing")
	err := errors.WrapWithCode(base, errors.CodeFailedPrecondition, "encounter not started")

	assert.Equal(t, errors.CodeFailedPrecondition, err.Code)
	assert.True(t, errors.IsFailedPrecondition(err))
	assert.ErrorIs(t, err, base)
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	assert.Equal(t, errors.CodeUnauthenticated, errors.GetCode(errors.Unauthenticated("bad token")))
}

func TestIsMatchesOnCode(t *testing.T) {
	a := errors.NotFound("a")
	b := errors.NotFound("b")
	assert.True(t, errors.Is(a, b))

	c := errors.InvalidArgument("c")
	assert.False(t, errors.Is(a, c))
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[errors.Code]int{
		errors.CodeNotFound:           http.StatusNotFound,
		errors.CodeInvalidArgument:    http.StatusBadRequest,
		errors.CodeFailedPrecondition: http.StatusConflict,
		errors.CodeUnauthenticated:    http.StatusUnauthorized,
		errors.CodeInternal:           http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, code.HTTPStatus(), "code %s", code)
	}
}

func TestWriteHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	errors.WriteHTTP(rec, errors.NotFound("creature not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "creature not found", body["message"])
}

func TestWriteHTTPHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	errors.WriteHTTP(rec, fmt.Errorf("password=hunter2 leaked"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hunter2")
}
