// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

// Package middleware provides the HTTP middleware chain for the Tradedesk API server.
//
// # Architecture
//
// Middleware intercepts incoming HTTP requests to apply global policies
// before they reach the domain handlers. This includes cross-cutting concerns
// like Logging, AuthZ/AuthN, Rate Limiting, and origin gating.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hoangvu/tradedesk/internal/platform/apperr"
	"github.com/hoangvu/tradedesk/internal/platform/constants"
	"github.com/hoangvu/tradedesk/internal/platform/ctxutil"
	"github.com/hoangvu/tradedesk/internal/platform/respond"
	"github.com/hoangvu/tradedesk/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify bearer tokens.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the [sec.TokenService]
// implementation, allowing us to easily inject fakes during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// PrincipalResolver re-resolves a verified token subject against the
// credential store.
//
// # Why re-resolve?
//
// Issued tokens are stateless and cannot be individually revoked. Requiring a
// fresh store lookup on every request bounds the blast radius of a stolen
// token to accounts that still exist: an operator cuts off access by deleting
// the identity, and the gate starts rejecting the token on the next request.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, userID string) (*sec.Principal, error)
}

// Authenticate is the authorization gate applied to every protected route.
//
// # Flow
//
//  1. Extract the token from 'Authorization: Bearer <token>'. Absent or
//     malformed header → 401.
//  2. Verify signature and expiry via [TokenVerifier]. Any failure
//     (malformed, signature mismatch, expired) → 401.
//  3. Re-resolve the principal via [PrincipalResolver] — the token's cached
//     email claim alone is never trusted. Identity gone → 401.
//  4. Attach the [*sec.Principal] to the request context and admit.
//
// Every check performs a fresh store lookup; nothing is cached across
// requests.
func Authenticate(verifier TokenVerifier, resolver PrincipalResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Header Extraction ──────────────────────────────────────────
			authHeader := request.Header.Get(constants.HeaderAuthorization)
			if authHeader == "" {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(parts[1])
			if err != nil {
				// Malformed, tampered, and expired tokens all collapse into
				// the same client-visible answer.
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 3. Principal Re-Resolution ────────────────────────────────────
			principal, err := resolver.ResolvePrincipal(request.Context(), claims.UserID)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithPrincipal(request.Context(), principal)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
