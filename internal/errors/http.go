package errors

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// httpError is the JSON body written for failed requests.
type httpError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// WriteHTTP renders an error as a JSON response with the status code
// derived from the error's Code. Non-Error values are rendered as
// INTERNAL without leaking the underlying message.
func WriteHTTP(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	body := httpError{
		Code:    string(CodeInternal),
		Message: "internal error",
	}
	status := http.StatusInternalServerError

	var customErr *Error
	if As(err, &customErr) {
		body.Code = string(customErr.Code)
		body.Message = customErr.Message
		body.Meta = customErr.Meta
		status = customErr.Code.HTTPStatus()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(body); encodeErr != nil {
		slog.Error("failed to encode error response", "error", encodeErr)
	}
}
