// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hoangvu/tradedesk/internal/platform/constants"
)

// RedisLoginAttemptRepository implements LoginAttemptRepository using Redis.
//
// Counters are plain INCR keys with a TTL set on first use, so the throttle
// window slides forward automatically and stale entries expire without any
// cleanup worker.
type RedisLoginAttemptRepository struct {
	client *redis.Client
}

// NewLoginAttemptRepository creates a new Redis-backed LoginAttemptRepository.
func NewLoginAttemptRepository(client *redis.Client) *RedisLoginAttemptRepository {
	return &RedisLoginAttemptRepository{client: client}
}

/*
Count returns the number of failed attempts currently recorded for the key.

Description: A missing or expired counter reads as zero.

Parameters:
  - context: context.Context
  - key: string

Returns:
  - int64: Failures observed within the current window
  - error: Connectivity errors
*/
func (repository *RedisLoginAttemptRepository) Count(context context.Context, key string) (int64, error) {

	redisKey := constants.RedisPrefixLoginAttempts + key

	count, err := repository.client.Get(context, redisKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis_login_attempts_count_failed: %w", err)
	}

	return count, nil
}

/*
Increment records one failed attempt for the key and returns the running total.

Parameters:
  - context: context.Context
  - key: string (client identifier, typically the remote IP)
  - window: time.Duration (counting window; applied on the first failure)

Returns:
  - int64: Total failures observed within the current window
  - error: Connectivity errors
*/
func (repository *RedisLoginAttemptRepository) Increment(context context.Context, key string, window time.Duration) (int64, error) {

	// Use constants for key prefix
	redisKey := constants.RedisPrefixLoginAttempts + key

	count, err := repository.client.Incr(context, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("redis_login_attempts_incr_failed: %w", err)
	}

	// First failure in this window: arm the expiry.
	if count == 1 {
		if err := repository.client.Expire(context, redisKey, window).Err(); err != nil {
			return count, fmt.Errorf("redis_login_attempts_expire_failed: %w", err)
		}
	}

	return count, nil
}

/*
Reset clears the failure counter after a successful login.

Parameters:
  - context: context.Context
  - key: string

Returns:
  - error: Connectivity errors
*/
func (repository *RedisLoginAttemptRepository) Reset(context context.Context, key string) error {

	redisKey := constants.RedisPrefixLoginAttempts + key

	if err := repository.client.Del(context, redisKey).Err(); err != nil {
		return fmt.Errorf("redis_login_attempts_reset_failed: %w", err)
	}

	return nil
}
