package session

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"
)

var ErrNoSession = errors.New("no valid session")

// Manager binds logins to session cookies. The cookie value is an HS256
// token carrying the user id and a jti; the jti must also be live in the
// store, so a logged-out cookie fails Resolve even before it expires.
type Manager struct {
	store  *Store
	secret []byte
	ttl    time.Duration
}

func NewManager(store *Store, secret string, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: []byte(secret), ttl: ttl}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue establishes a session for userID and returns the cookie value.
func (m *Manager) Issue(ctx context.Context, userID uint) (string, error) {
	jti, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"jti":     jti.String(),
		"user_id": float64(userID),
		"exp":     time.Now().Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}

	if err := m.store.Put(ctx, jti.String(), userID); err != nil {
		return "", err
	}
	return signed, nil
}

// Resolve maps a cookie value back to a user id, or ErrNoSession.
func (m *Manager) Resolve(ctx context.Context, tokenStr string) (uint, error) {
	jti, userID, err := m.parse(tokenStr)
	if err != nil {
		return 0, ErrNoSession
	}

	live, err := m.store.Exists(ctx, jti)
	if err != nil {
		return 0, err
	}
	if !live {
		return 0, ErrNoSession
	}
	return userID, nil
}

// Revoke terminates the session. Subsequent Resolve calls with the same
// cookie fail.
func (m *Manager) Revoke(ctx context.Context, tokenStr string) error {
	jti, _, err := m.parse(tokenStr)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, jti)
}

func (m *Manager) parse(tokenStr string) (jti string, userID uint, err error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", 0, ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", 0, ErrNoSession
	}
	jti, ok = claims["jti"].(string)
	if !ok || jti == "" {
		return "", 0, ErrNoSession
	}
	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return "", 0, ErrNoSession
	}
	return jti, uint(id), nil
}
