// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"context"
	"errors"
	"sync"
)

// ErrGateIntegrity returned when more parties walk through a gate than it was sized for
var ErrGateIntegrity = errors.New("ErrGateIntegrity")

// ErrGateCanceled returned when the gate was canceled without a specific error
var ErrGateCanceled = errors.New("ErrGateCanceled")

// Gate lets one goroutine wait until count others walked through it.
type Gate interface {
	WalkThrough() error
	AwaitGateCondition(ctx context.Context) error
	CancelWithError(error)
}

type gateImpl struct {
	gateCondition *sync.Cond
	count         uint16
	arrived       uint16
	canceled      bool
	err           error
}

func (g *gateImpl) WalkThrough() error {
	g.gateCondition.L.Lock()
	defer g.gateCondition.L.Unlock()

	if g.arrived == g.count {
		return ErrGateIntegrity
	}

	g.arrived++

	if g.arrived == g.count {
		g.gateCondition.Broadcast()
	}

	return nil
}

func (g *gateImpl) awaitGateCondition() error {
	g.gateCondition.L.Lock()
	defer g.gateCondition.L.Unlock()

	for g.arrived != g.count && !g.canceled {
		g.gateCondition.Wait()
	}

	if g.canceled {
		if g.err != nil {
			return g.err
		}
		return ErrGateCanceled
	}

	return nil
}

// AwaitGateCondition blocks until every party walked through, the gate is
// canceled, or ctx is done. A done ctx cancels the gate with ctx.Err().
func (g *gateImpl) AwaitGateCondition(ctx context.Context) error {
	errorChan := make(chan error, 1)

	go func() {
		errorChan <- g.awaitGateCondition()
	}()

	select {
	case err := <-errorChan:
		return err
	case <-ctx.Done():
		g.CancelWithError(ctx.Err())
		return ctx.Err()
	}
}

func (g *gateImpl) CancelWithError(err error) {
	g.gateCondition.L.Lock()
	defer g.gateCondition.L.Unlock()
	g.canceled = true
	g.err = err
	g.gateCondition.Broadcast()
}

// NewGate returns a Gate that opens after count walk-throughs.
func NewGate(count uint16) Gate {
	return &gateImpl{
		count:         count,
		gateCondition: sync.NewCond(&sync.Mutex{}),
	}
}
