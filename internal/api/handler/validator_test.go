package handler

import (
	"errors"
	"testing"

	"github.com/shopstack/accounts-service/internal/core/domain"
)

func validSignup() signupRequest {
	return signupRequest{
		Name:     "Jo Doe",
		Email:    "jo@example.com",
		Phone:    "9876543210",
		Password: "pass1",
	}
}

func TestValidator_AcceptsValidSignup(t *testing.T) {
	v := NewValidator()
	req := validSignup()
	if err := v.Validate(&req); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}

func TestValidator_FieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*signupRequest)
		field  string
	}{
		{"name required", func(r *signupRequest) { r.Name = "" }, "name"},
		{"name too short", func(r *signupRequest) { r.Name = "Jo" }, "name"},
		{"email required", func(r *signupRequest) { r.Email = "" }, "email"},
		{"email malformed", func(r *signupRequest) { r.Email = "not-an-email" }, "email"},
		{"phone required", func(r *signupRequest) { r.Phone = "" }, "phone"},
		{"phone too short", func(r *signupRequest) { r.Phone = "98765" }, "phone"},
		{"phone bad leading digit", func(r *signupRequest) { r.Phone = "1876543210" }, "phone"},
		{"phone non-numeric", func(r *signupRequest) { r.Phone = "987654321x" }, "phone"},
		{"password required", func(r *signupRequest) { r.Password = "" }, "password"},
		{"password too short", func(r *signupRequest) { r.Password = "abc" }, "password"},
		{"password too long", func(r *signupRequest) { r.Password = "aaaaaaaaaaaaaaaaaaaaa" }, "password"},
		{"roleId malformed", func(r *signupRequest) { r.RoleID = "not-a-uuid" }, "roleid"},
	}

	v := NewValidator()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validSignup()
			tc.mutate(&req)

			err := v.Validate(&req)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(ve.Fields) != 1 {
				t.Fatalf("expected one field error, got %+v", ve.Fields)
			}
			if ve.Fields[0].Field != tc.field {
				t.Fatalf("expected error on %q, got %q", tc.field, ve.Fields[0].Field)
			}
			if ve.Fields[0].Message == "" {
				t.Fatal("field error carries no message")
			}
		})
	}
}

func TestValidator_RoleIDOptional(t *testing.T) {
	v := NewValidator()
	req := validSignup()
	if err := v.Validate(&req); err != nil {
		t.Fatalf("empty roleId must be accepted: %v", err)
	}

	req.RoleID = "07c651bb-4a26-4a28-ae10-3e9a7ad9d3a9"
	if err := v.Validate(&req); err != nil {
		t.Fatalf("well-formed roleId rejected: %v", err)
	}
}

func TestValidator_MobileBoundaries(t *testing.T) {
	v := NewValidator()
	for _, phone := range []string{"6000000000", "9999999999"} {
		req := validSignup()
		req.Phone = phone
		if err := v.Validate(&req); err != nil {
			t.Fatalf("phone %q rejected: %v", phone, err)
		}
	}
	for _, phone := range []string{"5999999999", "98765432101", "987654321"} {
		req := validSignup()
		req.Phone = phone
		if err := v.Validate(&req); err == nil {
			t.Fatalf("phone %q accepted", phone)
		}
	}
}
