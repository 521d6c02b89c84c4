// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package round

import (
	"context"

	"github.com/Satoshi-Kusumoto/finality-grandpa/grandpa/bridge"
	"github.com/Satoshi-Kusumoto/finality-grandpa/grandpa/task"
	log "github.com/sirupsen/logrus"
)

// WaitFor parks the calling goroutine until pred holds for the state of the
// prior round, and returns that state. It returns ctx.Err() if ctx is done
// first.
func WaitFor[H comparable](ctx context.Context, latter *bridge.LatterView[State[H]], pred func(State[H]) bool) (State[H], error) {
	var last State[H]
	err := task.BlockOn(ctx, func(w task.Waker) bool {
		last = latter.Get(w)
		return pred(last)
	})
	if err != nil {
		log.WithError(err).WithField("bridge", latter.ID()).Debug("Stopped waiting on prior round")
		return last, err
	}
	return last, nil
}

// WaitForFinality waits until the prior round finalized a block.
func WaitForFinality[H comparable](ctx context.Context, latter *bridge.LatterView[State[H]]) (State[H], error) {
	return WaitFor(ctx, latter, State[H].IsFinalized)
}

// WaitForCompletable waits until the prior round can be completed.
func WaitForCompletable[H comparable](ctx context.Context, latter *bridge.LatterView[State[H]]) (State[H], error) {
	return WaitFor(ctx, latter, func(s State[H]) bool { return s.Completable })
}
