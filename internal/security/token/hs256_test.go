package token

import (
	"testing"
	"time"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	m := NewManager("test-secret")
	tok, err := m.Sign("alice", "moderator", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	sub, role, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if sub != "alice" || role != "moderator" {
		t.Fatalf("claims = %s/%s", sub, role)
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	m := NewManager("test-secret")
	tok, _ := m.Sign("alice", "viewer", time.Hour)
	if _, _, err := m.Verify(tok + "x"); err == nil {
		t.Fatalf("tampered token must fail")
	}
	other := NewManager("other-secret")
	if _, _, err := other.Verify(tok); err == nil {
		t.Fatalf("wrong secret must fail")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := NewManager("test-secret")
	tok, _ := m.Sign("alice", "viewer", -time.Minute)
	if _, _, err := m.Verify(tok); err == nil {
		t.Fatalf("expired token must fail")
	}
}
