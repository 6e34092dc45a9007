// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

package auth

import (
	"context"
	"time"
)

// UserRepository defines the data access contract for user accounts.
//
// # Review Process
//
// This interface is placed in a separate file from user.go so entity changes
// and storage-contract changes can be reviewed independently by the team.
//
// # Implementations
//
// The canonical implementation for Tradedesk is PostgreSQL
// ([PostgresUserRepository]).
type UserRepository interface {
	// Create persists a brand-new user account to the storage.
	//
	// Returns [apperr.Conflict] if the unique email constraint fails. The
	// constraint is the atomic arbiter for concurrent registrations: exactly
	// one of two racing writers succeeds, the other gets the Conflict.
	Create(ctx context.Context, user *User) error

	// FindByID returns the account with the given ID.
	//
	// Returns [apperr.NotFound] if the account does not exist. Called by the
	// authorization gate on every protected request — never cached.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail returns the account with the given email.
	//
	// Email matching is exact and case-sensitive.
	// Returns [apperr.NotFound] if no user is registered with this email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Delete permanently removes the account.
	//
	// This is an administrative operation — issued tokens cannot be revoked
	// individually, so deleting the identity is how an operator cuts off a
	// compromised account. The gate's re-resolution makes the cut effective
	// on the very next request.
	Delete(ctx context.Context, id string) error
}

// LoginAttemptRepository tracks failed login attempts per client.
//
// # Domain Ownership
//
// Kept alongside [UserRepository] because the throttle exists purely to
// protect the credential endpoints. State is volatile: entries expire on
// their own and losing them only resets the throttle.
type LoginAttemptRepository interface {
	// Count returns the number of failed attempts currently recorded for the
	// key. A missing entry counts as zero.
	Count(ctx context.Context, key string) (int64, error)

	// Increment records one failed attempt for the key and returns the total
	// observed within the window.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)

	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, key string) error
}
