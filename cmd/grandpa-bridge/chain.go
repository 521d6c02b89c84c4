// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Satoshi-Kusumoto/finality-grandpa/grandpa/bridge"
	"github.com/Satoshi-Kusumoto/finality-grandpa/grandpa/round"
	"github.com/Satoshi-Kusumoto/finality-grandpa/grandpa/task"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type roundState = round.State[string]

// roundDriver plays a single round: it waits for its predecessor to become
// completable, then walks its own state forward one step at a time.
type roundDriver struct {
	number  uint64
	output  *bridge.PriorView[roundState]
	input   *bridge.LatterView[roundState] // nil for the first round
	step    time.Duration
	started task.Gate
	tracker *Tracker
	metrics *Metrics
}

func blockAt(height uint32) *round.Block[string] {
	return round.NewBlock(fmt.Sprintf("0x%08x", height), height)
}

func (d *roundDriver) logger() *log.Entry {
	return log.WithFields(log.Fields{"round": d.number, "bridge": d.output.ID()})
}

func (d *roundDriver) publish(state roundState) {
	d.output.Update(state)
	d.tracker.Record(d.number, d.output.ID(), state)
	d.metrics.observePublish(d.number, state)
	d.logger().Debugf("Published %s", state)
}

func (d *roundDriver) pause(ctx context.Context) error {
	select {
	case <-time.After(d.step):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *roundDriver) run(ctx context.Context) error {
	if err := d.started.WalkThrough(); err != nil {
		return fmt.Errorf("round %d: %w", d.number, err)
	}

	var base uint32
	if d.input != nil {
		waitStart := time.Now()
		prev, err := round.WaitForCompletable(ctx, d.input)
		d.metrics.observePriorWait(time.Since(waitStart))
		if err != nil {
			return fmt.Errorf("round %d waiting on round %d: %w", d.number, d.number-1, err)
		}
		if prev.Finalized != nil {
			base = prev.Finalized.Number
		}
		d.logger().Infof("Prior round completable, finalized %s", prev.Finalized)
	}

	head := blockAt(base + 1)
	steps := []roundState{
		{PrevoteGhost: head},
		{PrevoteGhost: head, Estimate: head},
		{PrevoteGhost: head, Estimate: head, Finalized: head},
		{PrevoteGhost: head, Estimate: head, Finalized: head, Completable: true},
	}
	for _, state := range steps {
		if err := d.pause(ctx); err != nil {
			return fmt.Errorf("round %d: %w", d.number, err)
		}
		d.publish(state)
	}

	d.logger().Infof("Round completable, finalized %s", head)
	return nil
}

// Chain is a sequence of rounds, each bridged to the next.
type Chain struct {
	drivers []*roundDriver
	started task.Gate
}

// NewChain wires rounds consecutive rounds with one bridge per round. Every
// round publishes on its own bridge; the latter view of the last one is left
// unconsumed, ready for a round that is not part of this chain.
func NewChain(rounds uint16, step time.Duration, tracker *Tracker, metrics *Metrics) *Chain {
	c := &Chain{started: task.NewGate(rounds)}

	var input *bridge.LatterView[roundState]
	for i := uint16(0); i < rounds; i++ {
		output, latter := bridge.New(roundState{})
		d := &roundDriver{
			number:  uint64(i) + 1,
			output:  output,
			input:   input,
			step:    step,
			started: c.started,
			tracker: tracker,
			metrics: metrics,
		}
		tracker.Record(d.number, output.ID(), roundState{})
		c.drivers = append(c.drivers, d)
		input = latter
	}

	return c
}

// Run drives every round to completion, or stops at the first failure.
func (c *Chain) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := c.started.AwaitGateCondition(ctx); err != nil {
			return err
		}
		log.Infof("All %d rounds started", len(c.drivers))
		return nil
	})

	for _, d := range c.drivers {
		d := d
		g.Go(func() error { return d.run(ctx) })
	}

	return g.Wait()
}
