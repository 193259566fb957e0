package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the only error Verify returns. Malformed tokens, bad
// signatures and expired claims are indistinguishable to the caller.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated caller extracted from a verified token.
// Email is display-only and never used for authorization.
type Identity struct {
	UserID string
	Email  string
}

// Verifier validates HS256 bearer tokens against a fixed secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})

	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	// validate time-based claims
	now := time.Now().Unix()
	if exp, ok := claims["exp"].(float64); ok {
		if int64(exp) < now {
			return Identity{}, ErrInvalidToken
		}
	}
	if nbf, ok := claims["nbf"].(float64); ok {
		if int64(nbf) > now {
			return Identity{}, ErrInvalidToken
		}
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Identity{}, ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return Identity{UserID: sub, Email: email}, nil
}

// Sign issues a token for the given subject. Used by the mktoken utility
// and by tests; the API itself never issues credentials.
func (v *Verifier) Sign(subject, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
	}
	if email != "" {
		claims["email"] = email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
