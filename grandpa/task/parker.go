// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"context"
)

// Parker suspends a single goroutine until it is woken.
// At most one wake is remembered while the goroutine is not parked.
type Parker struct {
	token chan struct{}
}

// Wake resumes the parked goroutine, or makes the next Park return
// immediately if it is not parked yet.
func (p *Parker) Wake() {
	select {
	case p.token <- struct{}{}:
	default:
		// a wake is already pending
	}
}

// Park blocks until Wake is called, consuming the pending wake.
func (p *Parker) Park() {
	<-p.token
}

// ParkContext is Park bounded by ctx. It returns ctx.Err() if ctx is done
// before a wake arrives.
func (p *Parker) ParkContext(ctx context.Context) error {
	select {
	case <-p.token:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NewParker returns new Parker instance.
func NewParker() *Parker {
	return &Parker{
		token: make(chan struct{}, 1),
	}
}

// PollFunc is polled by BlockOn with the waker of the calling goroutine.
// It returns true once the awaited condition holds.
type PollFunc func(w Waker) bool

// BlockOn polls poll on the calling goroutine until it reports ready,
// parking between attempts. A poll that returns false must have arranged for
// w to be woken when it is worth polling again.
func BlockOn(ctx context.Context, poll PollFunc) error {
	p := NewParker()
	for {
		if poll(p) {
			return nil
		}
		if err := p.ParkContext(ctx); err != nil {
			return err
		}
	}
}
