package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"multaqa/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWTTokens issues and verifies HS256-signed admin tokens. It implements
// both domain.TokenIssuer and domain.TokenVerifier.
type JWTTokens struct {
	secret []byte
}

// NewJWTTokens returns a JWT adapter signing with the given secret.
func NewJWTTokens(secret string) *JWTTokens {
	return &JWTTokens{secret: []byte(secret)}
}

func (j *JWTTokens) Issue(userID, email string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (j *JWTTokens) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return j.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid token claims")
	}
	return claims.Subject, nil
}

var (
	_ domain.TokenIssuer   = (*JWTTokens)(nil)
	_ domain.TokenVerifier = (*JWTTokens)(nil)
)
