// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"sync"
)

// Waker is implemented by anything that can be scheduled for resumption.
// Wake must be safe to call from any goroutine and must not block.
type Waker interface {
	Wake()
}

// AtomicWaker holds at most one registered Waker.
// The zero value is ready to use.
type AtomicWaker struct {
	mutex  sync.Mutex
	target Waker
}

// Register records w as the waker to notify on the next Wake, replacing any
// previously registered one. Registering nil clears the slot.
func (a *AtomicWaker) Register(w Waker) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.target = w
}

// Wake takes the registered waker out of the slot and wakes it, reporting
// whether there was one. It is a no-op when nothing is registered.
func (a *AtomicWaker) Wake() bool {
	a.mutex.Lock()
	target := a.target
	a.target = nil
	a.mutex.Unlock()

	// called outside the lock, target may re-register
	if target == nil {
		return false
	}
	target.Wake()
	return true
}
