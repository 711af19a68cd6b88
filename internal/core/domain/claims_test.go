package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestBuildClaims(t *testing.T) {
	account := &Account{
		ID:            42,
		Name:          "Jo Doe",
		Email:         "jo@example.com",
		Phone:         "9876543210",
		PasswordHash:  "$2a$10$secret",
		EmailVerified: true,
		Status:        StatusActive,
		CreatedAt:     time.Now(),
	}

	claims := BuildClaims(account, "customer")
	if claims.ID != "42" {
		t.Fatalf("expected id %q, got %q", "42", claims.ID)
	}
	if claims.Email != "jo@example.com" || claims.Role != "customer" || !claims.EmailVerified {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestBuildClaims_Deterministic(t *testing.T) {
	account := &Account{ID: 7, Email: "a@b.c", Status: StatusActive}
	first := BuildClaims(account, "admin")
	second := BuildClaims(account, "admin")
	if first != second {
		t.Fatalf("claims not stable: %+v vs %+v", first, second)
	}
}

func TestClaims_JSONExcludesSensitiveFields(t *testing.T) {
	claims := BuildClaims(&Account{
		ID:           1,
		Email:        "jo@example.com",
		Phone:        "9876543210",
		PasswordHash: "$2a$10$secret",
	}, "customer")

	raw, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	for _, forbidden := range []string{"9876543210", "$2a$10$secret", "phone", "password"} {
		if strings.Contains(body, forbidden) {
			t.Fatalf("claims JSON leaks %q: %s", forbidden, body)
		}
	}
}
