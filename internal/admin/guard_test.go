package admin

import (
	"errors"
	"testing"
)

func newTestGuard(t *testing.T) *Guard {
	t.Helper()
	return NewGuard(NewTokenMaker("test-secret"))
}

func TestGuard_LoginWithFixedPair(t *testing.T) {
	g := newTestGuard(t)

	tok, err := g.Login(adminEmail, adminPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok == "" {
		t.Fatalf("empty token")
	}
	if !g.Check(tok) {
		t.Fatalf("issued token rejected")
	}
}

func TestGuard_LoginNormalizesEmail(t *testing.T) {
	g := newTestGuard(t)

	if _, err := g.Login("  ADMIN@TechStore.com ", adminPassword); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestGuard_LoginRejectsWrongCredentials(t *testing.T) {
	g := newTestGuard(t)

	cases := []struct{ email, password string }{
		{"someone@techstore.com", adminPassword},
		{adminEmail, "wrong"},
		{"", ""},
	}

	for _, tc := range cases {
		if _, err := g.Login(tc.email, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("login(%q, %q): err=%v want ErrInvalidCredentials", tc.email, tc.password, err)
		}
	}
}

func TestGuard_LogoutInvalidatesSession(t *testing.T) {
	g := newTestGuard(t)

	tok, err := g.Login(adminEmail, adminPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	g.Logout()

	if g.Check(tok) {
		t.Fatalf("token still valid after logout")
	}
}

func TestGuard_NewLoginReplacesOldToken(t *testing.T) {
	g := newTestGuard(t)

	old, err := g.Login(adminEmail, adminPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	fresh, err := g.Login(adminEmail, adminPassword)
	if err != nil {
		t.Fatalf("relogin: %v", err)
	}

	if old != fresh && g.Check(old) {
		t.Fatalf("stale token accepted")
	}
	if !g.Check(fresh) {
		t.Fatalf("fresh token rejected")
	}
}

func TestGuard_CheckRejectsForeignToken(t *testing.T) {
	g := newTestGuard(t)
	if _, err := g.Login(adminEmail, adminPassword); err != nil {
		t.Fatalf("login: %v", err)
	}

	other := NewTokenMaker("other-secret")
	tok, err := other.New(adminEmail, sessionTTL)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	if g.Check(tok) {
		t.Fatalf("foreign token accepted")
	}
	if g.Check("garbage") {
		t.Fatalf("garbage accepted")
	}
	if g.Check("") {
		t.Fatalf("empty token accepted")
	}
}

func TestTokenMaker_RoundTrip(t *testing.T) {
	m := NewTokenMaker("s1")

	tok, err := m.New("admin@techstore.com", sessionTTL)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Email != "admin@techstore.com" {
		t.Fatalf("email=%q", claims.Email)
	}

	if _, err := NewTokenMaker("s2").Parse(tok); err == nil {
		t.Fatalf("parse with wrong secret succeeded")
	}
}
