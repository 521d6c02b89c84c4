// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package bridge hands the evolving state of one round to the round after it.
//
// The prior view is held by the round which produces the state and pushes
// updates to the latter view. The latter view is held by the subsequent round,
// which holds back certain activity while waiting for progress on the older
// round. Every Get on the latter view arms its waker, and every Update on the
// prior view wakes it.
package bridge

import (
	"sync"

	"github.com/Satoshi-Kusumoto/finality-grandpa/grandpa/task"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// bridged is the round state shared between one prior and one latter view.
type bridged[S any] struct {
	id    string
	mutex sync.RWMutex
	state S
	waker task.AtomicWaker
}

// write reports whether a registered waker was woken.
func (b *bridged[S]) write(state S) bool {
	b.mutex.Lock()
	b.state = state
	b.mutex.Unlock()

	return b.waker.Wake()
}

func (b *bridged[S]) read() S {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.state
}

func (b *bridged[S]) register(w task.Waker) {
	b.waker.Register(w)
}

// PriorView is the producing side of a bridge.
type PriorView[S any] struct {
	inner *bridged[S]
}

// Update replaces the bridged state and wakes the latter view's waker.
// No ordering between successive states is enforced.
func (v *PriorView[S]) Update(state S) {
	woken := v.inner.write(state)
	if log.IsLevelEnabled(log.TraceLevel) {
		log.WithFields(log.Fields{"bridge": v.inner.id, "woken": woken}).Trace("Round state updated")
	}
}

// ID identifies the bridge in logs.
func (v *PriorView[S]) ID() string {
	return v.inner.id
}

// LatterView is the consuming side of a bridge.
type LatterView[S any] struct {
	inner *bridged[S]
}

// Get registers w to be woken by the next Update, then returns the last
// round state. Registration always precedes the read, so an Update racing
// with Get either is observed or wakes w.
func (v *LatterView[S]) Get(w task.Waker) S {
	v.inner.register(w)
	state := v.inner.read()
	if log.IsLevelEnabled(log.TraceLevel) {
		log.WithField("bridge", v.inner.id).Trace("Round state fetched")
	}
	return state
}

// ID identifies the bridge in logs.
func (v *LatterView[S]) ID() string {
	return v.inner.id
}

// New constructs two views of a bridged round state seeded with initial.
func New[S any](initial S) (*PriorView[S], *LatterView[S]) {
	inner := &bridged[S]{
		id:    uuid.New().String(),
		state: initial,
	}
	return &PriorView[S]{inner: inner}, &LatterView[S]{inner: inner}
}
