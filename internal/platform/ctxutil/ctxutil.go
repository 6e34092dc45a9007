// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/hoangvu/tradedesk/internal/platform/ctxkey"
	"github.com/hoangvu/tradedesk/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity & Access

// principalSlot is a mutable cell shared between an outer middleware and the
// authorization gate. Context values only flow downward, so the gate cannot
// hand its principal back to middleware that wrapped it; the slot bridges
// that gap. It is written at most once, by the gate, on the request's own
// goroutine.
type principalSlot struct {
	principal *sec.Principal
}

// WithPrincipalSlot installs an empty principal slot into the context.
//
// Called by the logging middleware before the rest of the chain runs, so it
// can later report which identity cleared the authorization gate.
func WithPrincipalSlot(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxkey.KeyPrincipalSlot, &principalSlot{})
}

// WithPrincipal returns a new context with the authorized principal attached.
//
// Only the authorization gate may call this — the principal it stores has
// been freshly re-resolved from the credential store, not merely decoded
// from token claims. If an upstream middleware installed a principal slot,
// it is filled here so that middleware can observe the identity too.
func WithPrincipal(ctx context.Context, principal *sec.Principal) context.Context {
	if slot, ok := ctx.Value(ctxkey.KeyPrincipalSlot).(*principalSlot); ok {
		slot.principal = principal
	}
	return context.WithValue(ctx, ctxkey.KeyPrincipal, principal)
}

// GetPrincipal retrieves the [*sec.Principal] from the [context.Context].
// Returns nil for unauthenticated requests.
//
// Falls back to the principal slot, which lets an outer middleware read the
// principal a downstream gate attached in a child context.
func GetPrincipal(ctx context.Context) *sec.Principal {
	if principal, ok := ctx.Value(ctxkey.KeyPrincipal).(*sec.Principal); ok {
		return principal
	}
	if slot, ok := ctx.Value(ctxkey.KeyPrincipalSlot).(*principalSlot); ok {
		return slot.principal
	}
	return nil
}
