package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails parsing or validation.
var ErrInvalidToken = errors.New("invalid session token")

// JWTManager signs and validates session tokens. A token only proves which
// session it was issued for; the session row decides whether it is still live.
type JWTManager struct {
	secret []byte
	issuer string
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// SessionClaims identifies the user and session a token was issued for.
type SessionClaims struct {
	UserID    string
	SessionID string
	ExpiresAt time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// GenerateSessionToken creates a signed HS256 JWT with the user ID as subject
// and the session ID as the sid claim. The token expires with the session.
func (m *JWTManager) GenerateSessionToken(userID, sessionID string, expiresAt time.Time) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		SessionID: sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateSessionToken parses and validates a session token.
// All failures wrap ErrInvalidToken.
func (m *JWTManager) ValidateSessionToken(tokenString string) (SessionClaims, error) {
	if tokenString == "" {
		return SessionClaims{}, fmt.Errorf("token is empty: %w", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return SessionClaims{}, fmt.Errorf("parse token: %v: %w", err, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return SessionClaims{}, fmt.Errorf("invalid token claims: %w", ErrInvalidToken)
	}

	if claims.Subject == "" || claims.SessionID == "" {
		return SessionClaims{}, fmt.Errorf("missing sub or sid: %w", ErrInvalidToken)
	}

	return SessionClaims{
		UserID:    claims.Subject,
		SessionID: claims.SessionID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
