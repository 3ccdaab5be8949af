package admin

import (
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// The single administrator. A fixed pair, not configurable at
// runtime; this gate is explicitly not a security boundary.
const (
	adminEmail    = "admin@techstore.com"
	adminPassword = "admin1234"

	// sessionTTL is a backstop only; sessions end on explicit logout.
	sessionTTL = 24 * time.Hour
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Guard is the binary authenticated/anonymous gate in front of
// catalog-mutating operations. At most one session token is live at a
// time; logout invalidates it.
type Guard struct {
	mu      sync.Mutex
	jwt     *TokenMaker
	hash    []byte
	current string
}

func NewGuard(jwt *TokenMaker) *Guard {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return &Guard{jwt: jwt, hash: hash}
}

// Login moves the session to authenticated on an exact credential
// match and returns the session token. No lockout, no retry limiting.
func (g *Guard) Login(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	if email != adminEmail {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	tok, err := g.jwt.New(email, sessionTTL)
	if err != nil {
		return "", err
	}

	g.mu.Lock()
	g.current = tok
	g.mu.Unlock()
	return tok, nil
}

// Logout returns the session to anonymous.
func (g *Guard) Logout() {
	g.mu.Lock()
	g.current = ""
	g.mu.Unlock()
}

// Check reports whether the token is the live admin session.
func (g *Guard) Check(token string) bool {
	g.mu.Lock()
	current := g.current
	g.mu.Unlock()

	if token == "" || token != current {
		return false
	}

	_, err := g.jwt.Parse(token)
	return err == nil
}
