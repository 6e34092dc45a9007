// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hoangvu/tradedesk/internal/platform/ctxutil"
	"github.com/hoangvu/tradedesk/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Principal verifies that an authorized principal can be stored in context.
*/
func TestContext_Principal(t *testing.T) {
	ctx := context.Background()
	principal := &sec.Principal{
		ID:    "user-123",
		Email: "trader@example.com",
	}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetPrincipal(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithPrincipal(ctx, principal)
	retrieved := ctxutil.GetPrincipal(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "user-123", retrieved.ID)
	assert.Equal(t, "trader@example.com", retrieved.Email)
}

/*
TestContext_PrincipalSlot verifies that a principal attached in a child
context is visible through a slot installed in the parent context.
*/
func TestContext_PrincipalSlot(t *testing.T) {
	parent := ctxutil.WithPrincipalSlot(context.Background())

	// 1. An empty slot reads as anonymous
	assert.Nil(t, ctxutil.GetPrincipal(parent))

	// 2. A downstream gate attaches the principal to a child context
	principal := &sec.Principal{ID: "user-123", Email: "trader@example.com"}
	child := ctxutil.WithPrincipal(parent, principal)
	assert.Equal(t, principal, ctxutil.GetPrincipal(child))

	// 3. The parent context now sees the same identity through the slot
	retrieved := ctxutil.GetPrincipal(parent)
	assert.NotNil(t, retrieved)
	assert.Equal(t, "user-123", retrieved.ID)
}
