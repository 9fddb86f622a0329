package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TTL é a validade fixa da sessão; permissões mudadas no banco só valem
// após novo login.
const TTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

type Permissions struct {
	Logs         bool `json:"logs"`
	Appointments bool `json:"appointments"`
}

type Claims struct {
	UserID      uint        `json:"id"`
	IsAdmin     bool        `json:"isAdmin"`
	Permissions Permissions `json:"permissions"`

	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

func (m *Manager) Issue(userID uint, isAdmin bool, perms Permissions) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:      userID,
		IsAdmin:     isAdmin,
		Permissions: perms,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify aceita apenas HS256; assinatura errada, estrutura malformada e
// expiração caem todos em ErrInvalidToken.
func (m *Manager) Verify(raw string) (*Claims, error) {
	var claims Claims

	t, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}
