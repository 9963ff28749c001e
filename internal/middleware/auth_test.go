package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestNewJWTManager_EmptySecret(t *testing.T) {
	if _, err := NewJWTManager(""); err == nil {
		t.Fatal("expected an error for an empty signing secret")
	}
}

func TestGenerateValidate_RoundTrip(t *testing.T) {
	m, err := NewJWTManager("test-secret")
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}

	userID := uuid.New()
	token, err := m.Generate(userID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
	}
	if claims.ExpiresAt == nil {
		t.Error("expected an explicit expiration claim")
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	m1, _ := NewJWTManager("secret-one")
	m2, _ := NewJWTManager("secret-two")

	token, err := m1.Generate(uuid.New())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := m2.Validate(token); err == nil {
		t.Error("expected validation to fail for a token signed with a different secret")
	}
}

func TestAuthenticate_MissingToken(t *testing.T) {
	m, _ := NewJWTManager("test-secret")
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", httpErr.Code)
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	m, _ := NewJWTManager("test-secret")
	e := echo.New()

	userID := uuid.New()
	token, err := m.Generate(userID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := m.Authenticate(func(c echo.Context) error {
		called = true
		got, err := GetUserID(c)
		if err != nil {
			t.Errorf("GetUserID: %v", err)
		}
		if got != userID {
			t.Errorf("expected user ID %s in context, got %s", userID, got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("expected handler to pass, got %v", err)
	}
	if !called {
		t.Error("expected next handler to be called")
	}
}
