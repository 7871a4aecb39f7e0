package service

import (
	"fmt"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// ============================================================
// Access tokens, used by the auth middleware
// ============================================================

// AccessClaims are the claims carried by Supabase Auth access tokens.
// Sub is the user id every store call is scoped by.
type AccessClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier validates HS256 access tokens signed with the project's JWT
// secret.
type TokenVerifier struct {
	secret []byte
	now    func() time.Time
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret), now: time.Now}
}

// Verify checks signature and expiry and returns the user id.
func (v *TokenVerifier) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithTimeFunc(v.now), jwt.WithExpirationRequired())
	if err != nil {
		return "", &domain.ErrUnauthorized{Message: "invalid or expired token"}
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return "", &domain.ErrUnauthorized{Message: "invalid token"}
	}
	if claims.Subject == "" {
		return "", &domain.ErrUnauthorized{Message: "token has no subject"}
	}
	if claims.Role == "anon" {
		return "", &domain.ErrUnauthorized{Message: "anonymous tokens are not accepted"}
	}
	return claims.Subject, nil
}

// Sign issues an access token for userID. Local tooling and tests use it to
// mint tokens the verifier accepts.
func (v *TokenVerifier) Sign(userID string, ttl time.Duration) (string, error) {
	now := v.now()
	claims := AccessClaims{
		Role: "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "personal-finance",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
