package auth

import (
	"errors"
	"testing"
	"time"
)

func testJWTer() *JWTer {
	return &JWTer{
		Secret:     []byte("super-secret"),
		Issuer:     "shop-admin",
		SessionTTL: 24 * time.Hour,
		ResetTTL:   15 * time.Minute,
	}
}

func TestIssueSessionAndParse(t *testing.T) {
	t.Parallel()

	j := testJWTer()
	tok, err := j.IssueSession("user-123")
	if err != nil {
		t.Fatalf("IssueSession error: %v", err)
	}

	c, err := j.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if c.UID != "user-123" {
		t.Fatalf("uid mismatch: got %q want %q", c.UID, "user-123")
	}
	if c.Scope != ScopeSession {
		t.Fatalf("scope mismatch: got %q want %q", c.Scope, ScopeSession)
	}
}

func TestIssueResetScope(t *testing.T) {
	t.Parallel()

	j := testJWTer()
	tok, err := j.IssueReset("user-1")
	if err != nil {
		t.Fatalf("IssueReset error: %v", err)
	}
	c, err := j.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if c.Scope != ScopeReset {
		t.Fatalf("scope mismatch: got %q want %q", c.Scope, ScopeReset)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	j := testJWTer()
	j.SessionTTL = -1 * time.Second
	tok, err := j.IssueSession("u1")
	if err != nil {
		t.Fatalf("IssueSession error: %v", err)
	}

	_, err = j.Parse(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	j := testJWTer()
	tok, err := j.IssueSession("u2")
	if err != nil {
		t.Fatalf("IssueSession error: %v", err)
	}

	other := testJWTer()
	other.Secret = []byte("wrong-secret")
	_, err = other.Parse(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	j := testJWTer()
	_, err := j.Parse("not.a.jwt")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParse_WrongIssuer(t *testing.T) {
	t.Parallel()

	other := testJWTer()
	other.Issuer = "someone-else"
	tok, err := other.IssueSession("u3")
	if err != nil {
		t.Fatalf("IssueSession error: %v", err)
	}

	j := testJWTer()
	_, err = j.Parse(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
