// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangvu/tradedesk/internal/platform/sec"
)

/*
TestHashPassword verifies hashing produces distinct, verifiable hashes.
*/
func TestHashPassword(t *testing.T) {
	first, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	// Per-call salts: same plaintext, different hashes.
	assert.NotEqual(t, first, second)

	// The plaintext must never appear in the output.
	assert.NotContains(t, first, "correct horse")
}

/*
TestCheckPasswordHash covers the accept and reject paths of verification.
*/
func TestCheckPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("s3cr3t-pass")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{"correct_password", "s3cr3t-pass", hash, true},
		{"wrong_password", "wrong-pass", hash, false},
		{"empty_password", "", hash, false},
		{"garbage_hash", "s3cr3t-pass", "not-a-bcrypt-hash", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sec.CheckPasswordHash(tt.password, tt.hash))
		})
	}
}
