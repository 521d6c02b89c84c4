// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestWakeBeforePark(t *testing.T) {
	p := NewParker()
	p.Wake()

	done := make(chan struct{})
	go func() {
		p.Park()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pending wake was lost")
	}
}

func TestWakesCoalesce(t *testing.T) {
	p := NewParker()
	p.Wake()
	p.Wake()
	p.Park()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Equal(t, context.DeadlineExceeded, p.ParkContext(ctx))
}

func TestParkResumedByWake(t *testing.T) {
	p := NewParker()

	var errg errgroup.Group
	errg.Go(func() error {
		return p.ParkContext(context.Background())
	})
	p.Wake()

	assert.NoError(t, errg.Wait())
}

func TestParkContextCanceled(t *testing.T) {
	p := NewParker()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, context.Canceled, p.ParkContext(ctx))
}

func TestBlockOnReadyImmediately(t *testing.T) {
	polls := 0
	err := BlockOn(context.Background(), func(Waker) bool {
		polls++
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 1, polls)
}

func TestBlockOnRepollsAfterWake(t *testing.T) {
	var aw AtomicWaker
	var ready int32

	var errg errgroup.Group
	errg.Go(func() error {
		return BlockOn(context.Background(), func(w Waker) bool {
			aw.Register(w)
			return atomic.LoadInt32(&ready) == 1
		})
	})

	atomic.StoreInt32(&ready, 1)
	aw.Wake()

	assert.NoError(t, errg.Wait())
}

func TestBlockOnTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := BlockOn(ctx, func(Waker) bool { return false })
	assert.Equal(t, context.DeadlineExceeded, err)
}

func BenchmarkWakePark(b *testing.B) {
	p := NewParker()
	for n := 0; n < b.N; n++ {
		p.Wake()
		p.Park()
	}
}
