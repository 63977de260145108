// Package sessions issues and resolves per-login session tokens.
//
// A token is a signed JWT (HS256) carrying the owning user name, an expiry
// claim, and a random token ID. The manager remembers every ID it has handed
// out for the life of the process, so no two Issue calls can ever return
// equal tokens, even back-to-back for the same user.
package sessions

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/askarpov/loginward/internal/common"
)

// Claims are the session token claims: the registered set plus the owner.
type Claims struct {
	jwt.RegisteredClaims
	UserName string `json:"user_name"`
}

// Manager is safe for concurrent callers; synchronization is internal.
type Manager struct {
	secret   []byte
	validity time.Duration

	mu     sync.Mutex
	issued map[string]string // token ID -> user name
}

func NewManager(secret []byte, validity time.Duration) *Manager {
	return &Manager{
		secret:   secret,
		validity: validity,
		issued:   make(map[string]string),
	}
}

// Issue returns a new session token owned by userName.
func (m *Manager) Issue(userName string) (string, error) {
	id, err := m.reserveID(userName)
	if err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
		},
		UserName: userName,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// reserveID records a fresh random ID in the session table. Random UUIDs do
// not realistically collide, but the table makes process-lifetime uniqueness
// a checked property rather than a probabilistic one.
func (m *Manager) reserveID(userName string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for {
		u, err := uuid.NewRandom()
		if err != nil {
			return "", err
		}
		id := u.String()
		if _, dup := m.issued[id]; !dup {
			m.issued[id] = userName
			return id, nil
		}
	}
}

// Resolve verifies tokenString and returns the owning user name. Expired
// tokens yield common.ErrTokenExpired, anything else invalid yields
// common.ErrInvalidToken. Expiry checking is the consumer's call to make;
// the manager only reports it.
func (m *Manager) Resolve(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserName, nil
}
