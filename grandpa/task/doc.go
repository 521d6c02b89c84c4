// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

/*
Package task provides the wake contract and a minimal goroutine executor used
by round bridges.

# Wakers

Waker is the capability a suspended task hands to whoever may make progress on
its behalf. Calling Wake schedules the task for resumption; it never blocks.

AtomicWaker is a single-slot mailbox for one Waker. The consumer registers
before it inspects shared state, the producer wakes after it changed it:

	[consumer] aw.Register(p)
	[consumer] // read shared state, not ready
	[consumer] p.Park()

	[producer] // change shared state
	[producer] aw.Wake() // p is resumed

A later Register replaces an earlier one. Only one task is ever woken.

# Parkers

Parker is a Waker for a single goroutine. A Wake that arrives before Park is
remembered, so the register-then-read order above never loses a wakeup.

# Gates

Gate is a synchronization aid that allows one goroutine to wait until a set of
other goroutines walked through it. Tests and the demo binary use it to line
up producers and consumers before they start.
*/
package task
