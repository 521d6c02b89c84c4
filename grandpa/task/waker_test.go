// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingWaker struct {
	woken int32
}

func (c *countingWaker) Wake()        { atomic.AddInt32(&c.woken, 1) }
func (c *countingWaker) count() int32 { return atomic.LoadInt32(&c.woken) }

type wakerFunc func()

func (f wakerFunc) Wake() { f() }

func TestAtomicWakerWakesRegistered(t *testing.T) {
	var aw AtomicWaker
	w := &countingWaker{}
	aw.Register(w)

	assert.True(t, aw.Wake())
	assert.Equal(t, int32(1), w.count())
}

func TestAtomicWakerWakeWithoutRegistration(t *testing.T) {
	var aw AtomicWaker
	assert.False(t, aw.Wake())
}

func TestAtomicWakerLastRegistrationWins(t *testing.T) {
	var aw AtomicWaker
	first, second := &countingWaker{}, &countingWaker{}
	aw.Register(first)
	aw.Register(second)

	assert.True(t, aw.Wake())
	assert.Equal(t, int32(0), first.count())
	assert.Equal(t, int32(1), second.count())
}

func TestAtomicWakerTakesTarget(t *testing.T) {
	var aw AtomicWaker
	w := &countingWaker{}
	aw.Register(w)

	assert.True(t, aw.Wake())
	assert.False(t, aw.Wake())
	assert.Equal(t, int32(1), w.count())
}

func TestAtomicWakerRegisterNilClears(t *testing.T) {
	var aw AtomicWaker
	w := &countingWaker{}
	aw.Register(w)
	aw.Register(nil)

	assert.False(t, aw.Wake())
	assert.Equal(t, int32(0), w.count())
}

func TestAtomicWakerReregisterFromWake(t *testing.T) {
	var aw AtomicWaker
	var woken int
	var w wakerFunc
	w = func() {
		woken++
		aw.Register(w)
	}
	aw.Register(w)

	assert.True(t, aw.Wake())
	assert.True(t, aw.Wake())
	assert.Equal(t, 2, woken)
}
