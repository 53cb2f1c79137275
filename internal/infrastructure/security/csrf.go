package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// csrfTokenTTL bounds how long an issued form token stays parseable.
const csrfTokenTTL = time.Hour

// GenerateCSRFToken issues a signed token bound to the given session,
// embedded in form views. The token is issued and displayed but not yet
// verified on submit.
func GenerateCSRFToken(sessionID, secret string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"purpose": "csrf",
		"sid":     sessionID,
		"iat":     now.Unix(),
		"exp":     now.Add(csrfTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign csrf token: %w", err)
	}
	return signed, nil
}

// ValidateCSRFToken checks a token's signature and session binding.
func ValidateCSRFToken(tokenString, sessionID, secret string) bool {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	return claims["purpose"] == "csrf" && claims["sid"] == sessionID
}
