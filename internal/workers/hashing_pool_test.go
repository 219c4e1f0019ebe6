// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashingPool_HashAndCheck(t *testing.T) {
	pool := NewHashingPool(2)
	ctx := context.Background()

	hash, err := pool.Hash(ctx, "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	ok, err := pool.Check(ctx, "secret123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = pool.Check(ctx, "wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashingPool_CheckDummy(t *testing.T) {
	pool := NewHashingPool(1)

	assert.NoError(t, pool.CheckDummy(context.Background(), "anything"))
}

func TestHashingPool_HashTooLong(t *testing.T) {
	pool := NewHashingPool(1)

	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}

	_, err := pool.Hash(context.Background(), string(long))
	assert.Error(t, err)
}

func TestHashingPool_SizeBelowOne(t *testing.T) {
	pool := NewHashingPool(0)

	_, err := pool.Hash(context.Background(), "pw")
	assert.NoError(t, err)
}

func TestHashingPool_BoundsConcurrency(t *testing.T) {
	const size = 2

	var running, peak atomic.Int32
	pool := NewHashingPool(size)
	pool.hash = func(password string) (string, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		running.Add(-1)
		return "hashed-" + password, nil
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := pool.Hash(context.Background(), "pw")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(size))
	assert.Positive(t, peak.Load())
}

func TestHashingPool_ContextCanceledWhileWaiting(t *testing.T) {
	pool := NewHashingPool(1)

	release := make(chan struct{})
	started := make(chan struct{})
	pool.hash = func(string) (string, error) {
		close(started)
		<-release
		return "h", nil
	}

	go func() {
		_, _ = pool.Hash(context.Background(), "first")
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := pool.Hash(ctx, "second")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	ok, err := pool.Check(ctx, "second", "h")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, ok)

	assert.ErrorIs(t, pool.CheckDummy(ctx, "second"), context.DeadlineExceeded)

	close(release)
}
