// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the TokenProvider interface.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failure kinds. The gate treats all three as Unauthenticated,
// but tests and operators need to tell them apart.
var (
	// ErrTokenMalformed indicates the string is not a parseable compact JWT.
	ErrTokenMalformed = errors.New("sec: token is malformed")

	// ErrTokenSignatureInvalid indicates the signature does not verify under
	// the process signing secret.
	ErrTokenSignatureInvalid = errors.New("sec: token signature mismatch")

	// ErrTokenExpired indicates the token's exp claim is in the past.
	ErrTokenExpired = errors.New("sec: token is expired")
)

// AuthClaims represents the payload embedded inside a JWT Access Token.
//
// # Why custom claims?
//
// By embedding the UserID and Email directly inside the JWT, the transport
// layer can echo the principal without an extra decode step. The claims are
// abbreviated to keep the JWT payload small. Note that the authorization gate
// still re-resolves the principal from the store on every request — the
// embedded email is a convenience, never a source of truth.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"uid"`
	Email  string `json:"eml"`
}

// Principal is the verified identity attached to a request context after the
// authorization gate has both verified the token AND re-resolved the account
// from the credential store. It lives for exactly one request.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// # Key Management
//
// The signing secret is process-wide configuration, loaded once at startup
// and never rotated mid-process. Issued tokens are stateless: the server
// keeps no record of them and cannot revoke them individually.
type TokenService struct {
	signingSecret []byte
	issuer        string
}

// NewTokenService creates a new TokenService with the given shared secret.
func NewTokenService(signingSecret, issuer string) (*TokenService, error) {
	if signingSecret == "" {
		return nil, fmt.Errorf("sec: signing secret must not be empty")
	}

	return &TokenService{
		signingSecret: []byte(signingSecret),
		issuer:        issuer,
	}, nil
}

// GenerateAccessToken creates a new JWT access token for a user.
//
// The token carries the principal's id and email plus iat/exp bounds derived
// from timeToLive. Apart from iat/exp, the structure is deterministic.
func (service *TokenService) GenerateAccessToken(userID, email string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID: userID,
		Email:  email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.signingSecret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
//
// # Returns
//   - The embedded [*AuthClaims] on success.
//   - [ErrTokenMalformed], [ErrTokenSignatureInvalid], or [ErrTokenExpired]
//     (wrapped) on failure, matchable with [errors.Is].
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.signingSecret, nil
	})

	if err != nil {
		return nil, classifyTokenError(err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: unexpected claims type", ErrTokenMalformed)
	}

	return claims, nil
}

// classifyTokenError maps golang-jwt parse errors onto our sentinel kinds so
// callers never have to import the jwt library to branch on failure cause.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrTokenSignatureInvalid, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	default:
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
}
