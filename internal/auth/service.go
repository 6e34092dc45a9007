// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

// Package auth implements the authentication use cases for the Tradedesk platform.
//
// # Architecture
//
// The service in this file orchestrates domain entities and interacts with
// repositories through interfaces. It is technology-agnostic and does not
// know about HTTP or SQL.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/hoangvu/tradedesk/internal/platform/apperr"
	"github.com/hoangvu/tradedesk/internal/platform/constants"
	"github.com/hoangvu/tradedesk/internal/platform/sec"
	"github.com/hoangvu/tradedesk/pkg/uuidv7"
)

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - email: The email of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an error if signing fails.
	GenerateAccessToken(userID, email string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed by the security team.
type Service struct {
	userRepository    UserRepository
	attemptRepository LoginAttemptRepository
	tokenProvider     TokenProvider
	tokenTTL          time.Duration

	// decoyHash is a real bcrypt hash of a throwaway value. When a login
	// targets a non-existent email, we still verify the supplied password
	// against this hash so the unknown-email and wrong-password paths burn
	// the same bcrypt work and stay indistinguishable by timing.
	decoyHash string
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	attemptRepo LoginAttemptRepository,
	tokenProv TokenProvider,
	tokenTTL time.Duration,
) *Service {
	decoyHash, _ := sec.HashPassword(uuidv7.New())

	return &Service{
		userRepository:    userRepo,
		attemptRepository: attemptRepo,
		tokenProvider:     tokenProv,
		tokenTTL:          tokenTTL,
		decoyHash:         decoyHash,
	}
}

// RegisterInput holds the data required to enroll a new account.
//
// It is transient: the plaintext password exists only for the duration of the
// call and is discarded immediately after hashing.
type RegisterInput struct {
	Email    string
	Password string
}

// Register validates, hashes, and persists a brand new user account.
//
// # Parameters
//   - context: Context for the database operation.
//   - input: The user-provided registration details.
//
// # Returns
//   - A pointer to the newly created [*User].
//   - Returns [apperr.Conflict] if the email already exists.
//
// # Business Rules
//   - Emails must be unique (case-sensitive exact match).
//   - The database unique constraint is the atomic arbiter for concurrent
//     registrations; the pre-check below only provides a fast, friendly path.
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	// ── 1. Uniqueness Pre-Check ───────────────────────────────────────────

	// Return a client-safe Conflict error without attempting the insert.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// ── 2. Security ───────────────────────────────────────────────────────

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// ── 3. Entity Construction ────────────────────────────────────────────

	user := &User{
		ID:           uuidv7.New(), // Time-sortable ID to prevent PG index fragmentation.
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	// ── 4. Persistence ────────────────────────────────────────────────────

	// A concurrent registration that slipped past the pre-check surfaces
	// here as apperr.Conflict via the unique constraint.
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// LoginInput defines credentials for an authentication attempt.
//
// It is transient and never persisted; the plaintext password is discarded
// after verification.
type LoginInput struct {
	Email    string
	Password string

	// ClientKey identifies the caller for the failed-login throttle,
	// typically the remote IP.
	ClientKey string
}

// LoginResult represents a successfully authenticated login.
type LoginResult struct {
	Token string
	User  *User
}

// Login validates user credentials and issues a bearer token.
//
// # Parameters
//   - context: Context for the database operation.
//   - input: Contains Email and plain-text Password.
//
// # Returns
//   - A pointer to [LoginResult] containing the signed token.
//   - Returns [apperr.Unauthorized] if credentials do not match. The error is
//     identical for "no such user" and "wrong password" — content and timing
//     must not allow account enumeration.
//   - Returns [apperr.RateLimited] when the caller exceeded the failed-login
//     budget for the current window.
//
// # Flow
//  1. Check the failed-login throttle.
//  2. Lookup user by email (or burn a decoy hash verification).
//  3. Verify password hash using bcrypt.
//  4. Generate the JWT access token with the configured TTL.
func (service *Service) Login(context context.Context, input LoginInput) (*LoginResult, error) {
	// ── 1. Throttle Check ─────────────────────────────────────────────────

	// The throttle fails open: if the volatile store is unreachable we would
	// rather serve logins than lock everyone out.
	attempts, err := service.attemptRepository.Count(context, input.ClientKey)
	if err == nil && attempts >= constants.LoginThrottleMaxAttempts {
		return nil, apperr.RateLimited(int(constants.LoginThrottleWindow.Seconds()))
	}

	// ── 2. Fetch User Profile ─────────────────────────────────────────────

	user, findErr := service.userRepository.FindByEmail(context, input.Email)

	// ── 3. Security Verification ──────────────────────────────────────────

	// Both failure branches perform exactly one bcrypt comparison and return
	// the same generic error, preventing account enumeration by timing or by
	// message content.
	if findErr != nil {
		sec.CheckPasswordHash(input.Password, service.decoyHash)
		return nil, service.failLogin(context, input.ClientKey)
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, service.failLogin(context, input.ClientKey)
	}

	// ── 4. Token Issuance ─────────────────────────────────────────────────

	token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, service.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	// Successful login clears the throttle for this caller.
	_ = service.attemptRepository.Reset(context, input.ClientKey)

	return &LoginResult{
		Token: token,
		User:  user,
	}, nil
}

// failLogin records a failed attempt and returns the generic credentials error.
func (service *Service) failLogin(context context.Context, clientKey string) error {
	_, _ = service.attemptRepository.Increment(context, clientKey, constants.LoginThrottleWindow)
	return apperr.Unauthorized("Invalid login credentials")
}

// ResolvePrincipal re-reads the account for a verified token subject and
// returns the request-scoped principal.
//
// # Why not trust the token's email claim?
//
// Tokens are stateless and outlive account changes. Re-deriving the principal
// from the store on every check means deleting an identity immediately
// invalidates all of its outstanding tokens, even though none of them can be
// revoked individually.
func (service *Service) ResolvePrincipal(context context.Context, userID string) (*sec.Principal, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	return &sec.Principal{
		ID:    user.ID,
		Email: user.Email,
	}, nil
}
