// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangvu/tradedesk/internal/platform/apperr"
	"github.com/hoangvu/tradedesk/internal/platform/validate"
)

/*
TestValidator_AllRulesPass verifies that a fully valid chain returns nil.
*/
func TestValidator_AllRulesPass(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("email", "trader@example.com").
		Email("email", "trader@example.com").
		MinLen("password", "secret-password", 8).
		OneOf("mode", "BUY", "BUY", "SELL").
		Positive("qty", 10).
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_CollectsMultipleFailures verifies that every failed rule is
reported as its own FieldError in a single VALIDATION_ERROR.
*/
func TestValidator_CollectsMultipleFailures(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("email", "   ").
		MinLen("password", "short", 8).
		OneOf("mode", "HOLD", "BUY", "SELL").
		Positive("price", -3.5).
		Err()

	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Equal(t, 400, appErr.HTTPStatus)
	assert.Len(t, appErr.Details, 4)
}

/*
TestValidator_Email rejects malformed addresses and accepts valid ones.
*/
func TestValidator_Email(t *testing.T) {
	valid := &validate.Validator{}
	assert.NoError(t, valid.Email("email", "a@x.com").Err())

	invalid := &validate.Validator{}
	assert.Error(t, invalid.Email("email", "not-an-email").Err())
}

/*
TestRequiredError verifies the single-field shortcut produces a 400 AppError.
*/
func TestRequiredError(t *testing.T) {
	err := validate.RequiredError("password", "is required")

	assert.Equal(t, "VALIDATION_ERROR", err.Code)
	assert.Equal(t, 400, err.HTTPStatus)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "password", err.Details[0].Field)
}
