package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var errInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func signToken(cfg config, u *user) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			ID:        uuid.NewString(),
			Issuer:    cfg.jwt.issuer,
			Audience:  jwt.ClaimStrings{cfg.jwt.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.jwt.expiresInHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.jwt.secret))
}

// parseToken verifies signature, expiry, issuer and audience and returns
// the subject user id.
func parseToken(cfg config, tokenStr string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.jwt.secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return uuid.Nil, errInvalidToken
	}
	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errInvalidToken
	}
	if !claims.VerifyIssuer(cfg.jwt.issuer, true) {
		return uuid.Nil, errInvalidToken
	}
	if !claims.VerifyAudience(cfg.jwt.audience, true) {
		return uuid.Nil, errInvalidToken
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errInvalidToken
	}
	return userID, nil
}
