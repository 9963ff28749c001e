package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCodes(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{NewValidation("bad input"), http.StatusBadRequest},
		{NewConflict("taken"), http.StatusBadRequest},
		{NewAuth("invalid credentials"), http.StatusUnauthorized},
		{NewNotFound("missing"), http.StatusNotFound},
		{NewStorage("query failed", errors.New("conn refused")), http.StatusInternalServerError},
		{&Error{Kind: Unknown, Message: "mystery"}, http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := c.err.StatusCode(); got != c.want {
			t.Errorf("StatusCode for %q: expected %d, got %d", c.err.Message, c.want, got)
		}
	}
}

func TestKindPredicatesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("signup failed: %w", NewConflict("username already exists"))

	if !IsConflict(wrapped) {
		t.Error("expected IsConflict to see through fmt.Errorf wrapping")
	}
	if IsAuth(wrapped) {
		t.Error("IsAuth should not match a Conflict error")
	}
}

func TestToResponseHidesCause(t *testing.T) {
	cause := errors.New("pq: connection reset by peer")
	err := NewStorage("failed to query orders", cause)

	resp := err.ToResponse()
	if resp.Error != "failed to query orders" {
		t.Errorf("unexpected response message: %q", resp.Error)
	}

	// The full Error() string keeps the cause for logs
	if err.Error() == resp.Error {
		t.Error("expected Error() to include the wrapped cause for logging")
	}
	if !errors.Is(err, cause) {
		t.Error("expected Unwrap to expose the cause to errors.Is")
	}
}
