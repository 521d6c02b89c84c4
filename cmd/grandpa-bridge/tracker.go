// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"sort"
	"sync"

	"github.com/Satoshi-Kusumoto/finality-grandpa/grandpa/round"
)

// RoundDescription is the last state a round published.
type RoundDescription struct {
	Number uint64              `json:"number"`
	Bridge string              `json:"bridge"`
	State  round.State[string] `json:"state"`
}

// Tracker remembers what every round published, for the status API.
type Tracker struct {
	mutex  sync.RWMutex
	rounds map[uint64]RoundDescription
}

// Record stores the latest state of a round.
func (t *Tracker) Record(number uint64, bridgeID string, state round.State[string]) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.rounds[number] = RoundDescription{Number: number, Bridge: bridgeID, State: state}
}

// Round returns the description of a single round.
func (t *Tracker) Round(number uint64) (RoundDescription, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	d, found := t.rounds[number]
	return d, found
}

// Rounds returns all known rounds ordered by number.
func (t *Tracker) Rounds() []RoundDescription {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	rounds := make([]RoundDescription, 0, len(t.rounds))
	for _, d := range t.rounds {
		rounds = append(rounds, d)
	}
	sort.Slice(rounds, func(i, j int) bool { return rounds[i].Number < rounds[j].Number })
	return rounds
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{rounds: make(map[uint64]RoundDescription)}
}
