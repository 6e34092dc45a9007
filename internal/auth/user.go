// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

// Package auth owns user identity and the authentication use cases of the
// Tradedesk platform.
//
// # Architecture
//
// The entity in this file represents the "Truth" of the system. It has no
// dependencies on outer layers (like databases, APIs, or libraries), which
// keeps the core logic highly testable and resilient to technology changes.
package auth

import (
	"time"
)

// User represents a registered account on the Tradedesk platform.
//
// # Rules
//   - Email is the unique, case-sensitive lookup key.
//   - PasswordHash is generated via bcrypt exclusively by [Service.Register];
//     the record is never mutated afterwards (password change is a separate,
//     out-of-band administrative flow).
//   - Only the credential store owns this record; no other component holds a
//     mutable reference.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
