package handler

import (
	"errors"
	"strings"
	"testing"
)

func TestValidator_RegisterMessages(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registerRequest{Username: "al", Email: "nope", Password: ""})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{
		"username must be at least 3 characters",
		"email must be a valid email address",
		"password is required",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
	if !strings.HasPrefix(msg, "username") {
		t.Fatalf("fields must follow form order, got %q", msg)
	}

	long := strings.Repeat("x", 51)
	err = v.Validate(&registerRequest{Username: long, Email: "a@b.io", Password: "secret"})
	if err == nil || err.Error() != "username must be at most 50 characters" {
		t.Fatalf("unexpected max error: %v", err)
	}
	err = v.Validate(&registerRequest{Username: "alice", Email: "a@b.io", Password: "12345"})
	if err == nil || err.Error() != "password must be at least 6 characters" {
		t.Fatalf("unexpected min error: %v", err)
	}
}

func TestValidator_FieldsUseJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&loginRequest{})
	var fe *FormError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormError, got %T", err)
	}
	if len(fe.Fields) != 2 {
		t.Fatalf("expected two fields, got %v", fe.Fields)
	}
	if fe.Fields["username"] != "username is required" || fe.Fields["password"] != "password is required" {
		t.Fatalf("unexpected fields %v", fe.Fields)
	}
}

func TestValidator_ProfileOptionalFields(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&profileRequest{Avatar: "not a url"}); err == nil || err.Error() != "avatar must be a valid URL" {
		t.Fatalf("unexpected avatar error: %v", err)
	}
	if err := v.Validate(&profileRequest{}); err != nil {
		t.Fatalf("empty profile update should pass: %v", err)
	}
	if err := v.Validate(&profileRequest{Email: "a@b.io", Avatar: "https://cdn.example.com/a.png"}); err != nil {
		t.Fatalf("valid profile update rejected: %v", err)
	}
}
