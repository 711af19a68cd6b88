package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopstack/accounts-service/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"duplicate email", domain.ErrDuplicateEmail, http.StatusConflict, "This email already exists"},
		{"duplicate phone", domain.ErrDuplicatePhone, http.StatusConflict, "This phone number already exists"},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest, "Invalid or inactive role"},
		{"role not found", domain.ErrRoleNotFound, http.StatusBadRequest, "Invalid or inactive role"},
		{"role inactive", domain.ErrRoleInactive, http.StatusBadRequest, "Invalid or inactive role"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"missing credentials", domain.ErrMissingCredentials, http.StatusUnauthorized, "Invalid credentials"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, body := handleError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if body.Message != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, body.Message)
			}
			if len(body.Errors) != 0 {
				t.Fatalf("domain errors must not carry field errors: %+v", body.Errors)
			}
		})
	}
}

func TestErrorHandler_CredentialFailuresIndistinguishable(t *testing.T) {
	codeA, bodyA := handleError(t, domain.ErrMissingCredentials)
	codeB, bodyB := handleError(t, domain.ErrInvalidCredentials)
	if codeA != codeB || bodyA.Message != bodyB.Message {
		t.Fatalf("credential failures differ: %d/%q vs %d/%q", codeA, bodyA.Message, codeB, bodyB.Message)
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("register"), domain.ErrDuplicateEmail)
	code, body := handleError(t, wrapped)
	if code != http.StatusConflict || body.Message != "This email already exists" {
		t.Fatalf("wrapped error not unwrapped: %d %q", code, body.Message)
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	code, body := handleError(t, &domain.ValidationError{Fields: []domain.FieldError{
		{Field: "email", Message: "email must be a valid email"},
		{Field: "phone", Message: "phone must be a valid mobile number"},
	}})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if body.Message != "Validation error" || len(body.Errors) != 2 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Errors[0].Field != "email" {
		t.Fatalf("field errors lost order: %+v", body.Errors)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := handleError(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid token"))
	if code != http.StatusUnauthorized || body.Message != "invalid token" {
		t.Fatalf("unexpected mapping: %d %q", code, body.Message)
	}
}

func TestErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	code, body := handleError(t, errors.New("pq: connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body.Message != "Internal server error" {
		t.Fatalf("internal detail leaked: %q", body.Message)
	}
}
