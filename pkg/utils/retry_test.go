// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRetryConfig(t *testing.T) {
	config := NewRetryConfig(5, 100*time.Millisecond, 5*time.Second)

	assert.Equal(t, 5, config.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, config.BaseDelay)
	assert.Equal(t, 5*time.Second, config.MaxDelay)
	assert.Nil(t, config.Permanent)
}

func TestRetryConfig_Backoff(t *testing.T) {
	config := NewRetryConfig(10, 10*time.Millisecond, 50*time.Millisecond)

	assert.Equal(t, 10*time.Millisecond, config.backoff(1))
	assert.Equal(t, 20*time.Millisecond, config.backoff(2))
	assert.Equal(t, 40*time.Millisecond, config.backoff(3))
	assert.Equal(t, 50*time.Millisecond, config.backoff(4))
	assert.Equal(t, 50*time.Millisecond, config.backoff(9))
}

func TestRetryWithExponentialBackoff_SuccessAfterRetries(t *testing.T) {
	config := NewRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond)

	callCount := 0
	start := time.Now()
	err := RetryWithExponentialBackoff(context.Background(), config, func() error {
		callCount++
		if callCount < 3 {
			return errors.New("temporary error")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
	// 10ms + 20ms
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestRetryWithExponentialBackoff_AllAttemptsFail(t *testing.T) {
	config := NewRetryConfig(3, time.Millisecond, 10*time.Millisecond)
	expectedErr := errors.New("persistent error")

	callCount := 0
	err := RetryWithExponentialBackoff(context.Background(), config, func() error {
		callCount++
		return expectedErr
	})

	require.Error(t, err)
	assert.Equal(t, 3, callCount)
	assert.Contains(t, err.Error(), "failed after 3 attempts")
	assert.ErrorIs(t, err, expectedErr)
}

func TestRetryWithExponentialBackoff_PermanentError(t *testing.T) {
	permanent := errors.New("bucket does not exist")
	config := NewRetryConfig(5, time.Millisecond, 10*time.Millisecond)
	config.Permanent = func(err error) bool { return errors.Is(err, permanent) }

	callCount := 0
	err := RetryWithExponentialBackoff(context.Background(), config, func() error {
		callCount++
		return permanent
	})

	assert.Equal(t, 1, callCount)
	assert.Same(t, permanent, err)
}

func TestRetryWithExponentialBackoff_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	config := NewRetryConfig(5, 100*time.Millisecond, time.Second)

	callCount := 0
	err := RetryWithExponentialBackoff(ctx, config, func() error {
		callCount++
		if callCount == 2 {
			cancel()
		}
		return errors.New("error requiring retry")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "retry cancelled")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, callCount)
}
